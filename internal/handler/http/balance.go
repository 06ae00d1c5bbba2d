package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/openhrms/leave-ledger-go/internal/domain/balance"
	"github.com/openhrms/leave-ledger-go/internal/handler/http/response"
)

type BalanceHandler interface {
	Details(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	CloseMonth(w http.ResponseWriter, r *http.Request)
	ReopenMonth(w http.ResponseWriter, r *http.Request)
	SeedBalance(w http.ResponseWriter, r *http.Request)
}

type BalanceHandlerImpl struct {
	balanceService balance.BalanceService
}

func NewBalanceHandler(balanceService balance.BalanceService) BalanceHandler {
	return &BalanceHandlerImpl{balanceService: balanceService}
}

// Details implements BalanceHandler.
func (h *BalanceHandlerImpl) Details(w http.ResponseWriter, r *http.Request) {
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

	rows, err := h.balanceService.Details(r.Context(), companyID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Summary implements BalanceHandler.
func (h *BalanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
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

	rows, err := h.balanceService.Summary(r.Context(), companyID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// CloseMonth implements BalanceHandler.
func (h *BalanceHandlerImpl) CloseMonth(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req balance.CloseMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CloseMonth decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.balanceService.CloseMonth(r.Context(), companyID, req.Month, req.Year, req.Force)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Month close completed", result)
}

// ReopenMonth implements BalanceHandler.
func (h *BalanceHandlerImpl) ReopenMonth(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req balance.ReopenMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ReopenMonth decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	reopened, err := h.balanceService.ReopenMonth(r.Context(), companyID, req.Month, req.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Month reopened", map[string]int{"reopened": reopened})
}

// SeedBalance implements BalanceHandler.
func (h *BalanceHandlerImpl) SeedBalance(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req balance.SeedBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SeedBalance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	row, err := h.balanceService.SeedOpeningBalance(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Opening balance seeded", row)
}
