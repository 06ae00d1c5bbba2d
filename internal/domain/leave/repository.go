package leave

import "context"

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	GetByID(ctx context.Context, id string) (LeaveType, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]LeaveType, error)
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	// GetApprovedForMonth returns approved requests overlapping the
	// month, with the day count clamped to the month's boundaries.
	GetApprovedForMonth(ctx context.Context, employeeID string, month, year int) ([]LeaveRequest, error)

	// ConsumptionForMonth buckets the month's approved usage by the
	// leave type's category.
	ConsumptionForMonth(ctx context.Context, employeeID string, month, year int) (Consumption, error)
}
