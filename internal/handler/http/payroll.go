package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bizpanel/panel-backend-go/internal/domain/payroll"
	"github.com/bizpanel/panel-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	CurrentPeriod(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	SaveBatch(w http.ResponseWriter, r *http.Request)
	GetBatch(w http.ResponseWriter, r *http.Request)
	ListBatches(w http.ResponseWriter, r *http.Request)
	GetRates(w http.ResponseWriter, r *http.Request)
	UpdateRates(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// CurrentPeriod returns the semi-monthly cutoff containing today, for
// prefilling the generate form.
func (h *payrollHandlerImpl) CurrentPeriod(w http.ResponseWriter, r *http.Request) {
	p := payroll.SemiMonthlyPeriod(time.Now())
	response.Success(w, payroll.PeriodResponse{
		Start: p.Start,
		End:   p.End,
		Key:   p.Key(),
	})
}

// Generate implements PayrollHandler.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GeneratePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.Generate(r.Context(), req)
	if err != nil {
		slog.Error("GeneratePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll generated", "period", resp.Period, "records", len(resp.Records))
	response.Success(w, resp)
}

// SaveBatch implements PayrollHandler.
func (h *payrollHandlerImpl) SaveBatch(w http.ResponseWriter, r *http.Request) {
	var req payroll.SaveBatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SavePayrollBatch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.SaveBatch(r.Context(), req)
	if err != nil {
		slog.Error("SavePayrollBatch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll batch saved", "period", resp.Period, "records", len(resp.Records))
	response.Created(w, "Payroll batch saved", resp)
}

// GetBatch implements PayrollHandler.
func (h *payrollHandlerImpl) GetBatch(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.GetBatch(r.Context(), chi.URLParam(r, "period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListBatches implements PayrollHandler.
func (h *payrollHandlerImpl) ListBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.payrollService.ListBatches(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, batches)
}

// GetRates implements PayrollHandler.
func (h *payrollHandlerImpl) GetRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.payrollService.GetRates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rates)
}

// UpdateRates implements PayrollHandler.
func (h *payrollHandlerImpl) UpdateRates(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateRatesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePayrollRates decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rates, err := h.payrollService.UpdateRates(r.Context(), req)
	if err != nil {
		slog.Error("UpdatePayrollRates service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll rates updated")
	response.SuccessWithMessage(w, "Rates updated", rates)
}
