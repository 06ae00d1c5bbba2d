package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/openhrms/leave-ledger-go/internal/domain/leave"
	"github.com/openhrms/leave-ledger-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, company_id, name, code, description, category, is_active,
			   created_at, updated_at
		FROM leave_types
		WHERE id = $1
	`
	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(
		&lt.ID, &lt.CompanyID, &lt.Name, &lt.Code, &lt.Description, &lt.Category, &lt.IsActive,
		&lt.CreatedAt, &lt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}
	return lt, nil
}

// GetByCompanyID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, company_id, name, code, description, category, is_active,
			   created_at, updated_at
		FROM leave_types
		WHERE company_id = $1
		ORDER BY name
	`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]leave.LeaveType, 0)
	for rows.Next() {
		var lt leave.LeaveType
		if err := rows.Scan(
			&lt.ID, &lt.CompanyID, &lt.Name, &lt.Code, &lt.Description, &lt.Category, &lt.IsActive,
			&lt.CreatedAt, &lt.UpdatedAt,
		); err != nil {
			return nil, err
		}
		types = append(types, lt)
	}
	return types, rows.Err()
}

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// GetApprovedForMonth implements leave.LeaveRequestRepository. Day counts
// are clamped to the month's boundaries so a request spanning two months
// only contributes the overlapping days.
func (r *leaveRequestRepositoryImpl) GetApprovedForMonth(ctx context.Context, employeeID string, month, year int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT lr.id, lr.employee_id, lr.company_id, lr.leave_type_id,
			   lr.start_date, lr.end_date,
			   (LEAST(lr.end_date, (make_date($3, $2, 1) + interval '1 month - 1 day')::date)::date
			    - GREATEST(lr.start_date, make_date($3, $2, 1))::date + 1)::numeric AS days,
			   lr.status, lr.created_at, lr.updated_at,
			   lt.name, lt.category
		FROM leave_requests lr
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		WHERE lr.employee_id = $1
		  AND lr.status = 'approved'
		  AND lr.start_date <= (make_date($3, $2, 1) + interval '1 month - 1 day')::date
		  AND lr.end_date >= make_date($3, $2, 1)
		ORDER BY lr.start_date
	`
	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.CompanyID, &lr.LeaveTypeID,
			&lr.StartDate, &lr.EndDate, &lr.Days,
			&lr.Status, &lr.CreatedAt, &lr.UpdatedAt,
			&lr.LeaveTypeName, &lr.LeaveTypeCategory,
		); err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// ConsumptionForMonth implements leave.LeaveRequestRepository. Bucketing
// happens in Go rather than SQL so uncategorized type names can be
// collected for the projection warnings.
func (r *leaveRequestRepositoryImpl) ConsumptionForMonth(ctx context.Context, employeeID string, month, year int) (leave.Consumption, error) {
	requests, err := r.GetApprovedForMonth(ctx, employeeID, month, year)
	if err != nil {
		return leave.Consumption{}, err
	}

	c := leave.Consumption{
		CasualDays: decimal.Zero,
		SickDays:   decimal.Zero,
		EarnedDays: decimal.Zero,
	}
	seen := make(map[string]bool)
	for _, lr := range requests {
		switch lr.LeaveTypeCategory {
		case leave.CategoryCasual:
			c.CasualDays = c.CasualDays.Add(lr.Days)
		case leave.CategorySick:
			c.SickDays = c.SickDays.Add(lr.Days)
		case leave.CategoryEarned:
			c.EarnedDays = c.EarnedDays.Add(lr.Days)
		default:
			if !seen[lr.LeaveTypeName] {
				seen[lr.LeaveTypeName] = true
				c.Unclassified = append(c.Unclassified, lr.LeaveTypeName)
			}
		}
	}
	return c, nil
}
