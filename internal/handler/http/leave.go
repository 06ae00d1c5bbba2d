package http

import (
	"net/http"

	"github.com/openhrms/leave-ledger-go/internal/domain/leave"
	"github.com/openhrms/leave-ledger-go/internal/handler/http/response"
)

type LeaveTypeHandler interface {
	ListTypes(w http.ResponseWriter, r *http.Request)
}

type LeaveTypeHandlerImpl struct {
	leaveTypeService leave.LeaveTypeService
}

func NewLeaveTypeHandler(leaveTypeService leave.LeaveTypeService) LeaveTypeHandler {
	return &LeaveTypeHandlerImpl{leaveTypeService: leaveTypeService}
}

// ListTypes implements LeaveTypeHandler.
func (h *LeaveTypeHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	types, err := h.leaveTypeService.ListTypes(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}
