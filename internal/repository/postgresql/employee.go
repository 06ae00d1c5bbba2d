package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/openhrms/leave-ledger-go/internal/domain/employee"
	"github.com/openhrms/leave-ledger-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, company_id, employee_code, full_name, category, leave_start_month,
	employment_status, hire_date, created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.EmployeeCode, &e.FullName, &e.Category, &e.LeaveStartMonth,
		&e.EmploymentStatus, &e.HireDate, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, companyID string, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND employee_code = $2 AND deleted_at IS NULL
	`
	return scanEmployee(q.QueryRow(ctx, query, companyID, employeeCode))
}

// GetActiveByCompanyID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND employment_status = 'active' AND deleted_at IS NULL
		ORDER BY employee_code
	`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.EmployeeCode, &e.FullName, &e.Category, &e.LeaveStartMonth,
			&e.EmploymentStatus, &e.HireDate, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
