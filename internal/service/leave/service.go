package leave

import (
	"context"

	"github.com/openhrms/leave-ledger-go/internal/domain/leave"
)

type LeaveTypeServiceImpl struct {
	leave.LeaveTypeRepository
}

func NewLeaveTypeService(leaveTypeRepo leave.LeaveTypeRepository) leave.LeaveTypeService {
	return &LeaveTypeServiceImpl{LeaveTypeRepository: leaveTypeRepo}
}

// ListTypes implements leave.LeaveTypeService. Types without a stored
// category are shown with the one the legacy name matcher would infer,
// so admins can spot rows that still need backfilling.
func (s *LeaveTypeServiceImpl) ListTypes(ctx context.Context, companyID string) ([]leave.LeaveType, error) {
	types, err := s.LeaveTypeRepository.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for i := range types {
		if types[i].Category == leave.CategoryUncategorized {
			types[i].Category = leave.ClassifyLegacy(types[i].Code, types[i].Name)
		}
	}
	return types, nil
}
