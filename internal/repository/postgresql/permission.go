package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/openhrms/leave-ledger-go/internal/domain/balance"
	"github.com/openhrms/leave-ledger-go/internal/pkg/database"
)

type permissionRepositoryImpl struct {
	db *database.DB
}

func NewPermissionRepository(db *database.DB) balance.PermissionRepository {
	return &permissionRepositoryImpl{db: db}
}

// Create implements balance.PermissionRepository.
func (r *permissionRepositoryImpl) Create(ctx context.Context, entry balance.PermissionEntry) (balance.PermissionEntry, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO permission_entries (
			id, employee_id, company_id, date, type, hours, days, month, year,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()
		) RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeID, entry.CompanyID, entry.Date,
		entry.Type, entry.Hours, entry.Days, entry.Month, entry.Year,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return balance.PermissionEntry{}, err
	}
	return entry, nil
}

// GetByID implements balance.PermissionRepository.
func (r *permissionRepositoryImpl) GetByID(ctx context.Context, id string) (balance.PermissionEntry, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, company_id, date, type, hours, days, month, year,
			   created_at, updated_at
		FROM permission_entries
		WHERE id = $1
	`
	var p balance.PermissionEntry
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.CompanyID, &p.Date, &p.Type, &p.Hours, &p.Days,
		&p.Month, &p.Year, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return balance.PermissionEntry{}, balance.ErrPermissionNotFound
		}
		return balance.PermissionEntry{}, err
	}
	return p, nil
}

// Delete implements balance.PermissionRepository.
func (r *permissionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM permission_entries
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return balance.ErrPermissionNotFound
	}
	return nil
}

// ListByEmployeeMonth implements balance.PermissionRepository.
func (r *permissionRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]balance.PermissionEntry, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, company_id, date, type, hours, days, month, year,
			   created_at, updated_at
		FROM permission_entries
		WHERE employee_id = $1 AND month = $2 AND year = $3
		ORDER BY date
	`
	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPermissions(rows, false)
}

// ListByCompanyMonth implements balance.PermissionRepository.
func (r *permissionRepositoryImpl) ListByCompanyMonth(ctx context.Context, companyID string, month, year int) ([]balance.PermissionEntry, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT p.id, p.employee_id, p.company_id, p.date, p.type, p.hours, p.days,
			   p.month, p.year, p.created_at, p.updated_at,
			   e.full_name AS employee_name
		FROM permission_entries p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.company_id = $1 AND p.month = $2 AND p.year = $3
		ORDER BY e.employee_code, p.date
	`
	rows, err := q.Query(ctx, query, companyID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPermissions(rows, true)
}

func scanPermissions(rows pgx.Rows, withName bool) ([]balance.PermissionEntry, error) {
	entries := make([]balance.PermissionEntry, 0)
	for rows.Next() {
		var p balance.PermissionEntry
		dest := []interface{}{
			&p.ID, &p.EmployeeID, &p.CompanyID, &p.Date, &p.Type, &p.Hours, &p.Days,
			&p.Month, &p.Year, &p.CreatedAt, &p.UpdatedAt,
		}
		if withName {
			dest = append(dest, &p.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		entries = append(entries, p)
	}
	return entries, rows.Err()
}
