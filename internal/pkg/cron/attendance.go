package cron

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
)

// AttendanceJobs closes out attendance records left dangling when an
// employee forgot to clock out on a previous day.
type AttendanceJobs struct {
	attendanceRepo  attendance.Repository
	scheduleRepo    schedule.Repository
	notificationSvc notification.Service
}

func NewAttendanceJobs(
	attendanceRepo attendance.Repository,
	scheduleRepo schedule.Repository,
	notificationSvc notification.Service,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo:  attendanceRepo,
		scheduleRepo:    scheduleRepo,
		notificationSvc: notificationSvc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_dangling_attendance", 1*time.Hour, j.CloseDanglingAttendance)
}

// CloseDanglingAttendance stamps a clock-out onto yesterday-or-older
// records that still have none, using the scheduled end of that day. A
// record on a day with no scheduled end is closed at its own clock-in,
// contributing zero worked hours beyond the day count.
func (j *AttendanceJobs) CloseDanglingAttendance(ctx context.Context) error {
	today := time.Now().Format("2006-01-02")

	open, err := j.attendanceRepo.ListOpen(ctx, today)
	if err != nil {
		return fmt.Errorf("list open attendance: %w", err)
	}
	if len(open) == 0 {
		return nil
	}

	closed := 0
	for _, rec := range open {
		timeOut := j.scheduledEnd(ctx, rec)
		rec.TimeOut = &timeOut

		if err := j.attendanceRepo.Update(ctx, rec); err != nil {
			slog.Error("Cron: failed to close dangling attendance",
				"attendance_id", rec.ID,
				"employee_id", rec.EmployeeID,
				"error", err)
			continue
		}

		if j.notificationSvc != nil {
			_ = j.notificationSvc.Queue(ctx, notification.CreateRequest{
				RecipientID: rec.EmployeeID,
				Type:        notification.TypeAttendanceAutoClosed,
				Title:       "Attendance Auto-Closed",
				Message:     fmt.Sprintf("No clock-out was recorded for %s; your attendance was closed at the scheduled end time.", rec.Date),
				Data: map[string]interface{}{
					"attendance_id": rec.ID,
					"date":          rec.Date,
				},
			})
		}
		closed++
	}

	slog.Info("Cron: closed dangling attendance records", "count", closed)
	return nil
}

// scheduledEnd resolves the "HH:MM:SS" clock-out for a record's day,
// falling back to the record's own clock-in when the day has no
// scheduled end.
func (j *AttendanceJobs) scheduledEnd(ctx context.Context, rec attendance.Record) string {
	week := schedule.DefaultWeeklySchedule()
	stored, err := j.scheduleRepo.GetByEmployeeID(ctx, rec.EmployeeID)
	if err == nil {
		week = stored.Week
	} else if !errors.Is(err, schedule.ErrScheduleNotFound) {
		slog.Warn("Cron: falling back to default schedule", "employee_id", rec.EmployeeID, "error", err)
	}

	date, err := time.Parse("2006-01-02", rec.Date)
	if err == nil {
		dayName := strings.ToLower(date.Weekday().String())
		if day, ok := week[dayName]; ok && day.Enabled && day.End != "" {
			return day.End + ":00"
		}
	}

	if rec.TimeIn != nil {
		return *rec.TimeIn
	}
	return "00:00:00"
}
