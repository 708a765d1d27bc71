package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bizpanel/panel-backend-go/internal/domain/attendance"
	"github.com/bizpanel/panel-backend-go/internal/domain/notification"
	"github.com/bizpanel/panel-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

// lateGraceMinutes is how far past the scheduled start a clock-in may
// land before the day is flagged late.
const lateGraceMinutes = 5

type service struct {
	attendanceRepo  attendance.Repository
	scheduleRepo    schedule.Repository
	notificationSvc notification.Service
	now             func() time.Time
}

func NewService(
	attendanceRepo attendance.Repository,
	scheduleRepo schedule.Repository,
	notificationSvc notification.Service,
) attendance.Service {
	return &service{
		attendanceRepo:  attendanceRepo,
		scheduleRepo:    scheduleRepo,
		notificationSvc: notificationSvc,
		now:             time.Now,
	}
}

func (s *service) ClockIn(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	now := s.now()
	date := now.Format("2006-01-02")
	timeIn := now.Format("15:04:05")

	_, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err == nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.RecordResponse{}, fmt.Errorf("clock in: %w", err)
	}

	isLate := false
	if day, ok := s.daySchedule(ctx, employeeID, now); ok && day.Start != "" {
		if start, valid := minutesOfClock(day.Start); valid {
			isLate = minutesSinceMidnight(now) > start+lateGraceMinutes
		}
	}

	record, err := s.attendanceRepo.Create(ctx, attendance.Record{
		EmployeeID:    employeeID,
		Date:          date,
		TimeIn:        &timeIn,
		Status:        attendance.StatusPresent,
		OvertimeHours: decimal.Zero,
		IsLate:        isLate,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	s.notify(ctx, employeeID, notification.TypeAttendanceClockIn,
		"Clocked In",
		fmt.Sprintf("You clocked in at %s.", timeIn),
		record)

	return attendance.ToResponse(record), nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	now := s.now()
	date := now.Format("2006-01-02")
	timeOut := now.Format("15:04:05")

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.RecordResponse{}, fmt.Errorf("clock out: %w", err)
	}
	if record.TimeOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyClockedOut
	}

	record.TimeOut = &timeOut
	record.OvertimeHours = s.overtimeHours(ctx, employeeID, now)

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, err
	}

	s.notify(ctx, employeeID, notification.TypeAttendanceClockOut,
		"Clocked Out",
		fmt.Sprintf("You clocked out at %s.", timeOut),
		record)

	return attendance.ToResponse(record), nil
}

// overtimeHours measures how far past the scheduled end the clock-out
// landed, in hours rounded to two decimals. Days without a usable
// scheduled end accrue no overtime automatically; an admin can still
// amend the record.
func (s *service) overtimeHours(ctx context.Context, employeeID string, now time.Time) decimal.Decimal {
	day, ok := s.daySchedule(ctx, employeeID, now)
	if !ok || day.End == "" {
		return decimal.Zero
	}
	end, valid := minutesOfClock(day.End)
	if !valid {
		return decimal.Zero
	}

	extra := minutesSinceMidnight(now) - end
	if extra <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(extra)).Div(decimal.NewFromInt(60)).Round(2)
}

func (s *service) Amend(ctx context.Context, req attendance.AmendRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.OvertimeHours != nil {
		record.OvertimeHours = *req.OvertimeHours
	}
	if req.IsHoliday != nil {
		record.IsHoliday = *req.IsHoliday
	}
	if req.IsLate != nil {
		record.IsLate = *req.IsLate
	}

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.ToResponse(record), nil
}

func (s *service) List(ctx context.Context) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// daySchedule resolves the employee's schedule for the given moment's
// weekday, falling back to the default week when none is stored.
// Disabled days return ok=false.
func (s *service) daySchedule(ctx context.Context, employeeID string, at time.Time) (schedule.DaySchedule, bool) {
	week := schedule.DefaultWeeklySchedule()
	stored, err := s.scheduleRepo.GetByEmployeeID(ctx, employeeID)
	if err == nil {
		week = stored.Week
	} else if !errors.Is(err, schedule.ErrScheduleNotFound) {
		slog.Warn("falling back to default schedule", "employee_id", employeeID, "error", err)
	}

	day, ok := week[strings.ToLower(at.Weekday().String())]
	if !ok || !day.Enabled {
		return schedule.DaySchedule{}, false
	}
	return day, true
}

func (s *service) notify(ctx context.Context, employeeID string, typ notification.Type, title, message string, record attendance.Record) {
	if s.notificationSvc == nil {
		return
	}
	_ = s.notificationSvc.Queue(ctx, notification.CreateRequest{
		RecipientID: employeeID,
		Type:        typ,
		Title:       title,
		Message:     message,
		Data: map[string]interface{}{
			"attendance_id": record.ID,
			"date":          record.Date,
		},
	})
}

func toResponses(records []attendance.Record) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}
	return responses
}

// minutesOfClock parses "HH:MM" into minutes since midnight.
func minutesOfClock(t string) (int, bool) {
	parsed, err := time.Parse("15:04", t)
	if err != nil {
		return 0, false
	}
	return parsed.Hour()*60 + parsed.Minute(), true
}

func minutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
