package balance

import "context"

// BalanceService exposes the three engine operations plus the lifecycle
// operations around them. Details and Summary never persist; CloseMonth is
// the only writer of closed ledger rows.
type BalanceService interface {
	Details(ctx context.Context, companyID string, month, year int) ([]DetailsRow, error)
	Summary(ctx context.Context, companyID string, month, year int) ([]SummaryRow, error)
	CloseMonth(ctx context.Context, companyID string, month, year int, force bool) (CloseResult, error)
	ReopenMonth(ctx context.Context, companyID string, month, year int) (int, error)
	SeedOpeningBalance(ctx context.Context, companyID string, req SeedBalanceRequest) (MonthlyBalance, error)
}

type CompOffService interface {
	Create(ctx context.Context, companyID string, req CreateCompOffRequest) (CompOffGrant, error)
	Approve(ctx context.Context, companyID, id string) error
	Reject(ctx context.Context, companyID, id string) error
	Delete(ctx context.Context, companyID, id string) error
	ListByMonth(ctx context.Context, companyID string, month, year int) ([]CompOffGrant, error)
}

type PermissionService interface {
	Create(ctx context.Context, companyID string, req CreatePermissionRequest) (PermissionEntry, error)
	Delete(ctx context.Context, companyID, id string) error
	ListByMonth(ctx context.Context, companyID string, month, year int) ([]PermissionEntry, error)
}
