package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaveType struct {
	ID          string
	CompanyID   string
	Name        string
	Code        *string
	Description *string

	// Category is assigned at configuration time and is the only input
	// the balance engine uses to bucket consumption. Types left
	// uncategorized are excluded from the engine and surfaced as
	// warnings on projections.
	Category Category

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Category string

const (
	CategoryCasual        Category = "CL"
	CategorySick          Category = "SL"
	CategoryEarned        Category = "EL"
	CategoryUncategorized Category = ""
)

type LeaveRequest struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	Days        decimal.Decimal
	Status      RequestStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for projections.
	LeaveTypeName     string
	LeaveTypeCategory Category
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Consumption is the month's approved leave usage bucketed by category.
// Unclassified holds the distinct names of leave types that carried no
// category and were therefore excluded from every bucket.
type Consumption struct {
	CasualDays   decimal.Decimal
	SickDays     decimal.Decimal
	EarnedDays   decimal.Decimal
	Unclassified []string
}
