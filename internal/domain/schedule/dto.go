package schedule

import (
	"context"

	"github.com/bizpanel/panel-backend-go/internal/pkg/validator"
)

type ReplaceScheduleRequest struct {
	EmployeeID string         `json:"-"`
	Week       WeeklySchedule `json:"week"`
}

func (r *ReplaceScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Week) == 0 {
		errs = append(errs, validator.ValidationError{Field: "week", Message: "is required"})
	}
	for day, ds := range r.Week {
		if !validator.IsValidDayName(day) {
			errs = append(errs, validator.ValidationError{Field: "week." + day, Message: "unknown day name"})
			continue
		}
		if !ds.Enabled {
			continue
		}
		if ds.Start != "" && !validator.IsValidClockTime(ds.Start) {
			errs = append(errs, validator.ValidationError{Field: "week." + day + ".start", Message: "must be HH:MM"})
		}
		if ds.End != "" && !validator.IsValidClockTime(ds.End) {
			errs = append(errs, validator.ValidationError{Field: "week." + day + ".end", Message: "must be HH:MM"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	EmployeeID  string         `json:"employee_id"`
	Week        WeeklySchedule `json:"week"`
	WeeklyHours float64        `json:"weekly_hours"`
	WorkingDays int            `json:"working_days"`
}

// Service is the schedule management contract consumed by the HTTP layer.
type Service interface {
	Get(ctx context.Context, employeeID string) (ScheduleResponse, error)
	Replace(ctx context.Context, req ReplaceScheduleRequest) (ScheduleResponse, error)
}
