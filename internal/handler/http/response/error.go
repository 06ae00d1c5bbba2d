package response

import (
	"errors"
	"net/http"

	"github.com/openhrms/leave-ledger-go/internal/domain/auth"
	"github.com/openhrms/leave-ledger-go/internal/domain/balance"
	"github.com/openhrms/leave-ledger-go/internal/domain/employee"
	"github.com/openhrms/leave-ledger-go/internal/domain/leave"
	"github.com/openhrms/leave-ledger-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrCompanyNotFound):
		Forbidden(w, "Company not found in token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Employee belongs to another company")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")

	// Balance domain errors
	case errors.Is(err, balance.ErrBalanceNotFound):
		NotFound(w, "Monthly balance not found")
	case errors.Is(err, balance.ErrMonthAlreadyClosed):
		Conflict(w, "Month is already closed")
	case errors.Is(err, balance.ErrPreviousMonthNotClosed):
		Conflict(w, "Previous month has not been closed")
	case errors.Is(err, balance.ErrDownstreamMonthClosed):
		Conflict(w, "A later month is already closed")
	case errors.Is(err, balance.ErrMonthClosedForEdits):
		Conflict(w, "Month is closed for edits")
	case errors.Is(err, balance.ErrGrantNotFound):
		NotFound(w, "Comp-off grant not found")
	case errors.Is(err, balance.ErrGrantAlreadyProcessed):
		Conflict(w, "Comp-off grant already processed")
	case errors.Is(err, balance.ErrPermissionNotFound):
		NotFound(w, "Permission entry not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
