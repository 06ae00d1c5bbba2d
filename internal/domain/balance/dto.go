package balance

import (
	"github.com/openhrms/leave-ledger-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusFull Status = "FULL"
	StatusLOP  Status = "LOP"
)

// PoolFigures is the four-column view of one leave pool in the summary
// projection: what was availed this month, what the pool held, what the
// waterfall drew from it, and what carries forward.
type PoolFigures struct {
	Current   decimal.Decimal `json:"current"`
	Available decimal.Decimal `json:"available"`
	Adjusted  decimal.Decimal `json:"adjusted"`
	Balance   decimal.Decimal `json:"balance"`
}

// SummaryRow is the live waterfall result for one employee. Nothing in it
// is persisted; the same computation feeds month close.
type SummaryRow struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeCode string          `json:"employee_code"`
	EmployeeName string          `json:"employee_name"`
	Category     string          `json:"category"`
	CompOff      PoolFigures     `json:"comp_off"`
	CompOffHours PoolFigures     `json:"comp_off_hours"`
	CL           PoolFigures     `json:"cl"`
	SL           PoolFigures     `json:"sl"`
	EL           PoolFigures     `json:"el"`
	Permission   PoolFigures     `json:"permission"`
	LateDays     decimal.Decimal `json:"late_days"`
	LOPDays      decimal.Decimal `json:"lop_days"`
	Status       Status          `json:"status"`

	// SLOverBalance flags slAvailed > slBalance. Informational only;
	// it never blocks computation or closing.
	SLOverBalance bool     `json:"validation_error"`
	Warnings      []string `json:"warnings,omitempty"`
}

// LeaveEntry is one approved leave request in the details projection.
type LeaveEntry struct {
	LeaveTypeName string          `json:"leave_type_name"`
	Category      string          `json:"category"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Days          decimal.Decimal `json:"days"`
}

// DetailsRow itemizes the raw inputs of one employee's month, for manual
// review before closing.
type DetailsRow struct {
	EmployeeID   string            `json:"employee_id"`
	EmployeeCode string            `json:"employee_code"`
	EmployeeName string            `json:"employee_name"`
	CompOffs     []CompOffGrant    `json:"comp_offs"`
	Permissions  []PermissionEntry `json:"permissions"`
	LeaveEntries []LeaveEntry      `json:"leave_entries"`
	LateDates    []string          `json:"late_dates"`
	Previous     *MonthlyBalance   `json:"previous_balance,omitempty"`
	Warnings     []string          `json:"warnings,omitempty"`
}

// CloseResult reports a month-close batch. Failures are per employee;
// their ledger rows stay unclosed for manual retry.
type CloseResult struct {
	Month     int            `json:"month"`
	Year      int            `json:"year"`
	Processed int            `json:"processed"`
	Failed    []CloseFailure `json:"failed,omitempty"`
}

type CloseFailure struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

type CloseMonthRequest struct {
	Month int  `json:"month"`
	Year  int  `json:"year"`
	Force bool `json:"force"`
}

func (r CloseMonthRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReopenMonthRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r ReopenMonthRequest) Validate() error {
	return CloseMonthRequest{Month: r.Month, Year: r.Year}.Validate()
}

type CreateCompOffRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
}

func (r CreateCompOffRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.Hours <= 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be greater than zero"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreatePermissionRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	Hours      float64 `json:"hours"`
}

func (r CreatePermissionRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.Type, PermissionTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of late_coming, early_going, general"})
	}
	if r.Hours <= 0 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be greater than zero"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SeedBalanceRequest bootstraps a tenant's first ledger month with opening
// balances, stored as an already-closed row so the following month can
// chain from it.
type SeedBalanceRequest struct {
	EmployeeID     string  `json:"employee_id"`
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	CompOffDays    float64 `json:"comp_off_days"`
	CompOffHours   float64 `json:"comp_off_hours"`
	CLBalance      float64 `json:"cl_balance"`
	SLBalance      float64 `json:"sl_balance"`
	ELBalance      float64 `json:"el_balance"`
	LateEarlyDays  float64 `json:"late_early_days"`
	LateEarlyHours float64 `json:"late_early_hours"`
}

func (r SeedBalanceRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}
	for field, v := range map[string]float64{
		"comp_off_days":    r.CompOffDays,
		"comp_off_hours":   r.CompOffHours,
		"cl_balance":       r.CLBalance,
		"sl_balance":       r.SLBalance,
		"el_balance":       r.ELBalance,
		"late_early_days":  r.LateEarlyDays,
		"late_early_hours": r.LateEarlyHours,
	} {
		if v < 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must not be negative"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
