package schedule

import (
	"context"
	"time"
)

type ShiftAssignmentRepository interface {
	// GetActiveForRange returns every assignment (shift and day-records
	// populated) overlapping [from, to] for the employee.
	GetActiveForRange(ctx context.Context, employeeID string, from, to time.Time) ([]ShiftAssignment, error)
}
