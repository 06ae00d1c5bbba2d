package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openhrms/leave-ledger-go/internal/domain/balance"
	"github.com/openhrms/leave-ledger-go/internal/pkg/database"
)

// BalanceJobs closes the previous ledger month for every tenant once the
// calendar rolls over. Disabled unless AUTO_CLOSE is set; most tenants
// prefer to review the summary projection and close by hand.
type BalanceJobs struct {
	balanceService balance.BalanceService
	db             *database.DB
}

func NewBalanceJobs(balanceService balance.BalanceService, db *database.DB) *BalanceJobs {
	return &BalanceJobs{
		balanceService: balanceService,
		db:             db,
	}
}

func (j *BalanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_previous_month", 1*time.Hour, j.AutoClosePreviousMonth)
}

func (j *BalanceJobs) AutoClosePreviousMonth(ctx context.Context) error {
	// Only run on the 1st of the month at midnight (00:00-00:59 UTC)
	now := time.Now().UTC()
	if now.Day() != 1 || now.Hour() != 0 {
		return nil
	}

	prev := now.AddDate(0, -1, 0)
	month, year := int(prev.Month()), prev.Year()

	slog.Info("Cron: Starting auto-close previous month job", "month", month, "year", year)

	rows, err := j.db.Pool.Query(ctx, `
		SELECT DISTINCT company_id FROM employees
		WHERE employment_status = 'active' AND deleted_at IS NULL
	`)
	if err != nil {
		return fmt.Errorf("failed to get companies: %w", err)
	}
	defer rows.Close()

	var companyIDs []string
	for rows.Next() {
		var companyID string
		if err := rows.Scan(&companyID); err != nil {
			continue
		}
		companyIDs = append(companyIDs, companyID)
	}

	totalProcessed := 0
	for _, companyID := range companyIDs {
		result, err := j.balanceService.CloseMonth(ctx, companyID, month, year, false)
		if err != nil {
			slog.Error("Cron: Failed to close month", "company_id", companyID, "error", err)
			continue
		}
		if len(result.Failed) > 0 {
			slog.Warn("Cron: Month close had per-employee failures",
				"company_id", companyID,
				"failed", len(result.Failed))
		}
		totalProcessed += result.Processed
	}

	slog.Info("Cron: Auto-closed previous month", "employees", totalProcessed)
	return nil
}
