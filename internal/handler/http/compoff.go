package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/openhrms/leave-ledger-go/internal/domain/balance"
	"github.com/openhrms/leave-ledger-go/internal/handler/http/response"
)

type CompOffHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type CompOffHandlerImpl struct {
	compOffService balance.CompOffService
}

func NewCompOffHandler(compOffService balance.CompOffService) CompOffHandler {
	return &CompOffHandlerImpl{compOffService: compOffService}
}

// Create implements CompOffHandler.
func (h *CompOffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req balance.CreateCompOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CompOff create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	grant, err := h.compOffService.Create(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Comp-off grant created", grant)
}

// Approve implements CompOffHandler.
func (h *CompOffHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.compOffService.Approve, "Comp-off grant approved")
}

// Reject implements CompOffHandler.
func (h *CompOffHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.compOffService.Reject, "Comp-off grant rejected")
}

func (h *CompOffHandlerImpl) setStatus(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, companyID, id string) error,
	message string,
) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Grant ID is required", nil)
		return
	}

	if err := op(r.Context(), companyID, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, nil)
}

// Delete implements CompOffHandler.
func (h *CompOffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Grant ID is required", nil)
		return
	}

	if err := h.compOffService.Delete(r.Context(), companyID, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Comp-off grant deleted", nil)
}

// List implements CompOffHandler.
func (h *CompOffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
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

	grants, err := h.compOffService.ListByMonth(r.Context(), companyID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, grants)
}
