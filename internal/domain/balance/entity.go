package balance

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBalance is the persisted per-employee-per-month ledger row. It is
// written only by month close (or the seeding operation) and read back as
// the "previous balance" of month+1. Once IsClosed is set the row is the
// authoritative carry-forward source for the next month.
//
// Any hour-valued field holds strictly fewer than 8 hours; the excess is
// folded into the matching days field before the row is stored.
type MonthlyBalance struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Month      int
	Year       int

	CompOffDays  decimal.Decimal
	CompOffHours decimal.Decimal

	CLBalance decimal.Decimal
	SLBalance decimal.Decimal
	ELBalance decimal.Decimal

	LateEarlyDays  decimal.Decimal
	LateEarlyHours decimal.Decimal

	LOPDays decimal.Decimal

	IsClosed  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompOffGrant credits hours worked outside the normal schedule. Only
// approved grants enter the ledger; Days is derived as Hours/8.
type CompOffGrant struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	Hours      decimal.Decimal
	Days       decimal.Decimal
	Status     GrantStatus
	Month      int
	Year       int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	EmployeeName *string
}

type GrantStatus string

const (
	GrantStatusPending  GrantStatus = "pending"
	GrantStatusApproved GrantStatus = "approved"
	GrantStatusRejected GrantStatus = "rejected"
)

// PermissionEntry records short hour-valued absences. There is no
// approval gate; every entry counts.
type PermissionEntry struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	Type       PermissionType
	Hours      decimal.Decimal
	Days       decimal.Decimal
	Month      int
	Year       int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	EmployeeName *string
}

type PermissionType string

const (
	PermissionLateComing PermissionType = "late_coming"
	PermissionEarlyGoing PermissionType = "early_going"
	PermissionGeneral    PermissionType = "general"
)

var PermissionTypeValues = []string{
	string(PermissionLateComing),
	string(PermissionEarlyGoing),
	string(PermissionGeneral),
}
