package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizpanel/panel-backend-go/internal/domain/schedule"
	"github.com/bizpanel/panel-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	Replace(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

// Get implements ScheduleHandler.
func (h *scheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.scheduleService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMine returns the authenticated employee's effective schedule.
func (h *scheduleHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	resp, err := h.scheduleService.Get(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Replace implements ScheduleHandler.
func (h *scheduleHandlerImpl) Replace(w http.ResponseWriter, r *http.Request) {
	var req schedule.ReplaceScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ReplaceSchedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	resp, err := h.scheduleService.Replace(r.Context(), req)
	if err != nil {
		slog.Error("ReplaceSchedule service error", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Schedule replaced", "employee_id", req.EmployeeID, "weekly_hours", resp.WeeklyHours)
	response.SuccessWithMessage(w, "Schedule updated", resp)
}
