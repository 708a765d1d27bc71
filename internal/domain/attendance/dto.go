package attendance

import (
	"context"

	"github.com/bizpanel/panel-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  *string         `json:"employee_name,omitempty"`
	Date          string          `json:"date"`
	TimeIn        *string         `json:"time_in,omitempty"`
	TimeOut       *string         `json:"time_out,omitempty"`
	Status        string          `json:"status"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	IsHoliday     bool            `json:"is_holiday"`
	IsLate        bool            `json:"is_late"`
}

func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		Date:          r.Date,
		TimeIn:        r.TimeIn,
		TimeOut:       r.TimeOut,
		Status:        r.Status,
		OvertimeHours: r.OvertimeHours,
		IsHoliday:     r.IsHoliday,
		IsLate:        r.IsLate,
	}
}

// AmendRequest is the admin correction path: flags and overtime can be
// adjusted after the fact, clock times cannot.
type AmendRequest struct {
	ID            string           `json:"-"`
	Status        *string          `json:"status,omitempty"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
	IsHoliday     *bool            `json:"is_holiday,omitempty"`
	IsLate        *bool            `json:"is_late,omitempty"`
}

func (r *AmendRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OvertimeHours != nil && r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.Status != nil && validator.IsEmpty(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Service is the attendance contract consumed by the HTTP layer.
type Service interface {
	ClockIn(ctx context.Context, employeeID string) (RecordResponse, error)
	ClockOut(ctx context.Context, employeeID string) (RecordResponse, error)
	Amend(ctx context.Context, req AmendRequest) (RecordResponse, error)
	List(ctx context.Context) ([]RecordResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]RecordResponse, error)
}
