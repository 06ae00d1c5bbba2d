package postgresql

import (
	"context"
	"time"

	"github.com/openhrms/leave-ledger-go/internal/domain/schedule"
	"github.com/openhrms/leave-ledger-go/internal/pkg/database"
)

type shiftAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) schedule.ShiftAssignmentRepository {
	return &shiftAssignmentRepositoryImpl{db: db}
}

// GetActiveForRange implements schedule.ShiftAssignmentRepository. The
// shift and its seven day-records are loaded in a second query to keep
// the row mapping flat.
func (r *shiftAssignmentRepositoryImpl) GetActiveForRange(ctx context.Context, employeeID string, from, to time.Time) ([]schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.shift_id, sa.start_date, sa.end_date,
			   sa.created_at, sa.updated_at,
			   s.id, s.company_id, s.name, s.created_at, s.updated_at
		FROM shift_assignments sa
		JOIN shifts s ON sa.shift_id = s.id
		WHERE sa.employee_id = $1
		  AND sa.start_date <= $3
		  AND sa.end_date >= $2
		ORDER BY sa.start_date
	`
	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]schedule.ShiftAssignment, 0)
	for rows.Next() {
		var a schedule.ShiftAssignment
		var s schedule.Shift
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.ShiftID, &a.StartDate, &a.EndDate,
			&a.CreatedAt, &a.UpdatedAt,
			&s.ID, &s.CompanyID, &s.Name, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.Shift = &s
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range assignments {
		days, err := r.getShiftDays(ctx, assignments[i].ShiftID)
		if err != nil {
			return nil, err
		}
		assignments[i].Shift.Days = days
	}
	return assignments, nil
}

func (r *shiftAssignmentRepositoryImpl) getShiftDays(ctx context.Context, shiftID string) ([]schedule.ShiftDay, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, shift_id, day_of_week, start_time, end_time, is_off,
			   grace_minutes, is_overnight
		FROM shift_days
		WHERE shift_id = $1
		ORDER BY day_of_week
	`
	rows, err := q.Query(ctx, query, shiftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]schedule.ShiftDay, 0, 7)
	for rows.Next() {
		var d schedule.ShiftDay
		if err := rows.Scan(
			&d.ID, &d.ShiftID, &d.DayOfWeek, &d.StartTime, &d.EndTime, &d.IsOff,
			&d.GraceMinutes, &d.IsOvernight,
		); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
