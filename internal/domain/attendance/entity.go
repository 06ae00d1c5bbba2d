package attendance

import "time"

// Punch is one biometric attendance record per employee per calendar date.
// Rows are written by the device ingestion pipeline; this service only
// reads them to detect lateness and count days present.
type Punch struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
