package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/openhrms/leave-ledger-go/internal/domain/balance"
	"github.com/openhrms/leave-ledger-go/internal/handler/http/response"
)

type PermissionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PermissionHandlerImpl struct {
	permissionService balance.PermissionService
}

func NewPermissionHandler(permissionService balance.PermissionService) PermissionHandler {
	return &PermissionHandlerImpl{permissionService: permissionService}
}

// Create implements PermissionHandler.
func (h *PermissionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req balance.CreatePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Permission create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.permissionService.Create(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Permission entry created", entry)
}

// Delete implements PermissionHandler.
func (h *PermissionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Permission ID is required", nil)
		return
	}

	if err := h.permissionService.Delete(r.Context(), companyID, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission entry deleted", nil)
}

// List implements PermissionHandler.
func (h *PermissionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, year, ok := monthYearFromQuery(r)
	if !ok {
		response.BadRequest(w, "Invalid month or year", nil)
		return
	}

	entries, err := h.permissionService.ListByMonth(r.Context(), companyID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
