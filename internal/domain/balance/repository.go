package balance

import "context"

// MonthlyBalanceRepository - interface for monthly_balances table
type MonthlyBalanceRepository interface {
	GetByEmployeeMonthYear(ctx context.Context, employeeID string, month, year int) (MonthlyBalance, error)

	// Upsert writes the row keyed on (employee_id, month, year). The
	// unique constraint serializes concurrent writes to the same key.
	Upsert(ctx context.Context, row MonthlyBalance) (MonthlyBalance, error)

	// HasRowsBefore reports whether any ledger row exists for the
	// employee earlier than (month, year). Used to tell a bootstrap
	// month from an out-of-order close.
	HasRowsBefore(ctx context.Context, employeeID string, month, year int) (bool, error)

	// AnyClosedAfter reports whether a closed row exists later than
	// (month, year) for any employee of the company.
	AnyClosedAfter(ctx context.Context, companyID string, month, year int) (bool, error)

	// ReopenMonth clears is_closed for every row of the company's
	// (month, year) bucket and returns the number of rows reopened.
	ReopenMonth(ctx context.Context, companyID string, month, year int) (int, error)
}

// CompOffRepository - interface for comp_off_grants table
type CompOffRepository interface {
	Create(ctx context.Context, grant CompOffGrant) (CompOffGrant, error)
	GetByID(ctx context.Context, id string) (CompOffGrant, error)
	UpdateStatus(ctx context.Context, id string, status GrantStatus) error
	Delete(ctx context.Context, id string) error
	ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]CompOffGrant, error)
	ListByCompanyMonth(ctx context.Context, companyID string, month, year int) ([]CompOffGrant, error)
}

// PermissionRepository - interface for permission_entries table
type PermissionRepository interface {
	Create(ctx context.Context, entry PermissionEntry) (PermissionEntry, error)
	GetByID(ctx context.Context, id string) (PermissionEntry, error)
	Delete(ctx context.Context, id string) error
	ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]PermissionEntry, error)
	ListByCompanyMonth(ctx context.Context, companyID string, month, year int) ([]PermissionEntry, error)
}
