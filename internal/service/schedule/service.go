package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizpanel/panel-backend-go/internal/domain/notification"
	"github.com/bizpanel/panel-backend-go/internal/domain/schedule"
)

type service struct {
	scheduleRepo    schedule.Repository
	notificationSvc notification.Service
}

func NewService(scheduleRepo schedule.Repository, notificationSvc notification.Service) schedule.Service {
	return &service{
		scheduleRepo:    scheduleRepo,
		notificationSvc: notificationSvc,
	}
}

// Get returns the employee's stored schedule, or the default week when
// none has ever been saved. Employees always have an effective schedule.
func (s *service) Get(ctx context.Context, employeeID string) (schedule.ScheduleResponse, error) {
	week := schedule.DefaultWeeklySchedule()

	stored, err := s.scheduleRepo.GetByEmployeeID(ctx, employeeID)
	if err == nil {
		week = stored.Week
	} else if !errors.Is(err, schedule.ErrScheduleNotFound) {
		return schedule.ScheduleResponse{}, fmt.Errorf("get schedule: %w", err)
	}

	return toResponse(employeeID, week), nil
}

// Replace overwrites the employee's whole week. Days absent from the
// request are stored as absent; there is no merge with the previous
// schedule.
func (s *service) Replace(ctx context.Context, req schedule.ReplaceScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	saved, err := s.scheduleRepo.Replace(ctx, req.EmployeeID, req.Week)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if s.notificationSvc != nil {
		_ = s.notificationSvc.Queue(ctx, notification.CreateRequest{
			RecipientID: req.EmployeeID,
			Type:        notification.TypeScheduleUpdated,
			Title:       "Schedule Updated",
			Message:     "Your weekly work schedule has been updated.",
			Data: map[string]interface{}{
				"weekly_hours": schedule.WeeklyHours(saved.Week),
			},
		})
	}

	return toResponse(saved.EmployeeID, saved.Week), nil
}

func toResponse(employeeID string, week schedule.WeeklySchedule) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		EmployeeID:  employeeID,
		Week:        week,
		WeeklyHours: schedule.WeeklyHours(week),
		WorkingDays: schedule.WorkingDaysCount(week),
	}
}
