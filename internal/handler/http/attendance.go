package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizpanel/panel-backend-go/internal/domain/attendance"
	"github.com/bizpanel/panel-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Amend(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	record, err := h.attendanceService.ClockIn(r.Context(), userID)
	if err != nil {
		slog.Error("ClockIn service error", "employee_id", userID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee clocked in", "employee_id", userID, "date", record.Date)
	response.Created(w, "Clocked in", record)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	record, err := h.attendanceService.ClockOut(r.Context(), userID)
	if err != nil {
		slog.Error("ClockOut service error", "employee_id", userID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee clocked out", "employee_id", userID, "date", record.Date)
	response.SuccessWithMessage(w, "Clocked out", record)
}

// Amend implements AttendanceHandler.
func (h *attendanceHandlerImpl) Amend(w http.ResponseWriter, r *http.Request) {
	var req attendance.AmendRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AmendAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	record, err := h.attendanceService.Amend(r.Context(), req)
	if err != nil {
		slog.Error("AmendAttendance service error", "attendance_id", req.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", record)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListMine returns the authenticated employee's own records.
func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	records, err := h.attendanceService.ListByEmployee(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListByEmployee implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
