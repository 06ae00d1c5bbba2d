package leave

import "context"

type LeaveTypeService interface {
	ListTypes(ctx context.Context, companyID string) ([]LeaveType, error)
}
