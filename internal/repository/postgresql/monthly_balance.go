package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/openhrms/leave-ledger-go/internal/domain/balance"
	"github.com/openhrms/leave-ledger-go/internal/pkg/database"
)

type monthlyBalanceRepositoryImpl struct {
	db *database.DB
}

func NewMonthlyBalanceRepository(db *database.DB) balance.MonthlyBalanceRepository {
	return &monthlyBalanceRepositoryImpl{db: db}
}

// GetByEmployeeMonthYear implements balance.MonthlyBalanceRepository.
func (r *monthlyBalanceRepositoryImpl) GetByEmployeeMonthYear(ctx context.Context, employeeID string, month, year int) (balance.MonthlyBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, company_id, month, year,
			   comp_off_days, comp_off_hours, cl_balance, sl_balance, el_balance,
			   late_early_days, late_early_hours, lop_days, is_closed,
			   created_at, updated_at
		FROM monthly_balances
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`
	var b balance.MonthlyBalance
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&b.ID, &b.EmployeeID, &b.CompanyID, &b.Month, &b.Year,
		&b.CompOffDays, &b.CompOffHours, &b.CLBalance, &b.SLBalance, &b.ELBalance,
		&b.LateEarlyDays, &b.LateEarlyHours, &b.LOPDays, &b.IsClosed,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return balance.MonthlyBalance{}, balance.ErrBalanceNotFound
		}
		return balance.MonthlyBalance{}, err
	}
	return b, nil
}

// Upsert implements balance.MonthlyBalanceRepository. The unique
// constraint on (employee_id, month, year) serializes concurrent writes
// to the same key; writes to different employees never contend.
func (r *monthlyBalanceRepositoryImpl) Upsert(ctx context.Context, row balance.MonthlyBalance) (balance.MonthlyBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO monthly_balances (
			id, employee_id, company_id, month, year,
			comp_off_days, comp_off_hours, cl_balance, sl_balance, el_balance,
			late_early_days, late_early_hours, lop_days, is_closed,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, $8, $9,
			$10, $11, $12, $13,
			NOW(), NOW()
		)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			comp_off_days = EXCLUDED.comp_off_days,
			comp_off_hours = EXCLUDED.comp_off_hours,
			cl_balance = EXCLUDED.cl_balance,
			sl_balance = EXCLUDED.sl_balance,
			el_balance = EXCLUDED.el_balance,
			late_early_days = EXCLUDED.late_early_days,
			late_early_hours = EXCLUDED.late_early_hours,
			lop_days = EXCLUDED.lop_days,
			is_closed = EXCLUDED.is_closed,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		row.EmployeeID, row.CompanyID, row.Month, row.Year,
		row.CompOffDays, row.CompOffHours, row.CLBalance, row.SLBalance, row.ELBalance,
		row.LateEarlyDays, row.LateEarlyHours, row.LOPDays, row.IsClosed,
	).Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return balance.MonthlyBalance{}, err
	}
	return row, nil
}

// HasRowsBefore implements balance.MonthlyBalanceRepository.
func (r *monthlyBalanceRepositoryImpl) HasRowsBefore(ctx context.Context, employeeID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT EXISTS (
			SELECT 1 FROM monthly_balances
			WHERE employee_id = $1
			  AND (year < $3 OR (year = $3 AND month < $2))
		)
	`
	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// AnyClosedAfter implements balance.MonthlyBalanceRepository.
func (r *monthlyBalanceRepositoryImpl) AnyClosedAfter(ctx context.Context, companyID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT EXISTS (
			SELECT 1 FROM monthly_balances
			WHERE company_id = $1
			  AND is_closed = TRUE
			  AND (year > $3 OR (year = $3 AND month > $2))
		)
	`
	var exists bool
	if err := q.QueryRow(ctx, query, companyID, month, year).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ReopenMonth implements balance.MonthlyBalanceRepository.
func (r *monthlyBalanceRepositoryImpl) ReopenMonth(ctx context.Context, companyID string, month, year int) (int, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE monthly_balances
		SET is_closed = FALSE, updated_at = NOW()
		WHERE company_id = $1 AND month = $2 AND year = $3 AND is_closed = TRUE
	`
	commandTag, err := q.Exec(ctx, query, companyID, month, year)
	if err != nil {
		return 0, err
	}
	return int(commandTag.RowsAffected()), nil
}
