package employee

import "time"

type Employee struct {
	ID           string
	CompanyID    string
	EmployeeCode string
	FullName     string
	Category     Category

	// LeaveStartMonth is the employee's personal anniversary month (1-12)
	// for the yearly CL/SL reset. When nil the balances never reset and
	// carry forward indefinitely.
	LeaveStartMonth *int

	EmploymentStatus EmploymentStatus
	HireDate         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type Category string

const (
	CategoryConfirmed Category = "confirmed"
	CategoryTimeScale Category = "time_scale"
	CategoryContract  Category = "contract"
	CategoryAdhoc     Category = "adhoc"
	CategoryPartTime  Category = "part_time"
)

var CategoryValues = []string{
	string(CategoryConfirmed),
	string(CategoryTimeScale),
	string(CategoryContract),
	string(CategoryAdhoc),
	string(CategoryPartTime),
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)
