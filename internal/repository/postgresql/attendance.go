package postgresql

import (
	"context"

	"github.com/openhrms/leave-ledger-go/internal/domain/attendance"
	"github.com/openhrms/leave-ledger-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// GetByEmployeeMonth implements attendance.PunchRepository.
func (r *punchRepositoryImpl) GetByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, company_id, date, clock_in, clock_out, created_at, updated_at
		FROM attendance_punches
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date
	`
	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	punches := make([]attendance.Punch, 0)
	for rows.Next() {
		var p attendance.Punch
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.CompanyID, &p.Date, &p.ClockIn, &p.ClockOut,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}
	return punches, rows.Err()
}
