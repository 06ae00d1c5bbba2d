package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/openhrms/leave-ledger-go/internal/domain/balance"
	"github.com/openhrms/leave-ledger-go/internal/pkg/database"
)

type compOffRepositoryImpl struct {
	db *database.DB
}

func NewCompOffRepository(db *database.DB) balance.CompOffRepository {
	return &compOffRepositoryImpl{db: db}
}

// Create implements balance.CompOffRepository.
func (r *compOffRepositoryImpl) Create(ctx context.Context, grant balance.CompOffGrant) (balance.CompOffGrant, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO comp_off_grants (
			id, employee_id, company_id, date, hours, days, status, month, year,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()
		) RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		grant.ID, grant.EmployeeID, grant.CompanyID, grant.Date,
		grant.Hours, grant.Days, grant.Status, grant.Month, grant.Year,
	).Scan(&grant.CreatedAt, &grant.UpdatedAt)
	if err != nil {
		return balance.CompOffGrant{}, err
	}
	return grant, nil
}

// GetByID implements balance.CompOffRepository.
func (r *compOffRepositoryImpl) GetByID(ctx context.Context, id string) (balance.CompOffGrant, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, company_id, date, hours, days, status, month, year,
			   created_at, updated_at
		FROM comp_off_grants
		WHERE id = $1
	`
	var g balance.CompOffGrant
	err := q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.EmployeeID, &g.CompanyID, &g.Date, &g.Hours, &g.Days,
		&g.Status, &g.Month, &g.Year, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return balance.CompOffGrant{}, balance.ErrGrantNotFound
		}
		return balance.CompOffGrant{}, err
	}
	return g, nil
}

// UpdateStatus implements balance.CompOffRepository.
func (r *compOffRepositoryImpl) UpdateStatus(ctx context.Context, id string, status balance.GrantStatus) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE comp_off_grants
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
	commandTag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return balance.ErrGrantNotFound
	}
	return nil
}

// Delete implements balance.CompOffRepository.
func (r *compOffRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM comp_off_grants
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return balance.ErrGrantNotFound
	}
	return nil
}

// ListByEmployeeMonth implements balance.CompOffRepository.
func (r *compOffRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]balance.CompOffGrant, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, company_id, date, hours, days, status, month, year,
			   created_at, updated_at
		FROM comp_off_grants
		WHERE employee_id = $1 AND month = $2 AND year = $3
		ORDER BY date
	`
	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGrants(rows, false)
}

// ListByCompanyMonth implements balance.CompOffRepository.
func (r *compOffRepositoryImpl) ListByCompanyMonth(ctx context.Context, companyID string, month, year int) ([]balance.CompOffGrant, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT g.id, g.employee_id, g.company_id, g.date, g.hours, g.days, g.status,
			   g.month, g.year, g.created_at, g.updated_at,
			   e.full_name AS employee_name
		FROM comp_off_grants g
		JOIN employees e ON g.employee_id = e.id
		WHERE g.company_id = $1 AND g.month = $2 AND g.year = $3
		ORDER BY e.employee_code, g.date
	`
	rows, err := q.Query(ctx, query, companyID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGrants(rows, true)
}

func scanGrants(rows pgx.Rows, withName bool) ([]balance.CompOffGrant, error) {
	grants := make([]balance.CompOffGrant, 0)
	for rows.Next() {
		var g balance.CompOffGrant
		dest := []interface{}{
			&g.ID, &g.EmployeeID, &g.CompanyID, &g.Date, &g.Hours, &g.Days,
			&g.Status, &g.Month, &g.Year, &g.CreatedAt, &g.UpdatedAt,
		}
		if withName {
			dest = append(dest, &g.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}
