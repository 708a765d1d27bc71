package payroll

import (
	"context"

	"github.com/bizpanel/panel-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateRequest struct {
	Month string `json:"month,omitempty"` // "YYYY-MM"
	Start string `json:"start,omitempty"` // "YYYY-MM-DD", with End
	End   string `json:"end,omitempty"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	hasMonth := r.Month != ""
	hasRange := r.Start != "" || r.End != ""

	switch {
	case hasMonth && hasRange:
		errs = append(errs, validator.ValidationError{Field: "month", Message: "provide either month or start/end, not both"})
	case hasMonth:
		if !validator.IsValidMonth(r.Month) {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
		}
	case hasRange:
		if _, ok := validator.IsValidDate(r.Start); !ok {
			errs = append(errs, validator.ValidationError{Field: "start", Message: "must be YYYY-MM-DD"})
		}
		if _, ok := validator.IsValidDate(r.End); !ok {
			errs = append(errs, validator.ValidationError{Field: "end", Message: "must be YYYY-MM-DD"})
		}
		if r.Start > r.End {
			errs = append(errs, validator.ValidationError{Field: "end", Message: "must not be before start"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "month", Message: "a month or a start/end range is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period converts the request into the engine's period value.
// Validate must have passed first.
func (r *GenerateRequest) Period() Period {
	if r.Month != "" {
		return MonthPeriod(r.Month)
	}
	return RangePeriod(r.Start, r.End)
}

// PeriodResponse describes a date range the frontend can prefill the
// generate form with.
type PeriodResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Key   string `json:"key"`
}

type GenerateResponse struct {
	Period  string   `json:"period"`
	Records []Record `json:"records"`
	Totals  Record   `json:"totals"`
}

type SaveBatchRequest struct {
	Month   string   `json:"month,omitempty"`
	Start   string   `json:"start,omitempty"`
	End     string   `json:"end,omitempty"`
	Records []Record `json:"records"`
}

func (r *SaveBatchRequest) Validate() error {
	gen := GenerateRequest{Month: r.Month, Start: r.Start, End: r.End}
	if err := gen.Validate(); err != nil {
		return err
	}

	var errs validator.ValidationErrors
	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{Field: "records", Message: "at least one record is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchResponse struct {
	ID        string   `json:"id"`
	Period    string   `json:"period"`
	Records   []Record `json:"data"`
	CreatedAt string   `json:"created_at"`
}

type UpdateRatesRequest struct {
	DailyRate           *decimal.Decimal `json:"daily_rate,omitempty"`
	OvertimeRatePerHour *decimal.Decimal `json:"overtime_rate_per_hour,omitempty"`
	HolidayRate         *decimal.Decimal `json:"holiday_rate,omitempty"`
	LateDeduction       *decimal.Decimal `json:"late_deduction,omitempty"`
	SSSRate             *decimal.Decimal `json:"sss_rate,omitempty"`
	PhilHealthRate      *decimal.Decimal `json:"philhealth_rate,omitempty"`
	PagIBIGRate         *decimal.Decimal `json:"pagibig_rate,omitempty"`
}

func (r *UpdateRatesRequest) Validate() error {
	var errs validator.ValidationErrors

	check := func(field string, v *decimal.Decimal) {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	check("daily_rate", r.DailyRate)
	check("overtime_rate_per_hour", r.OvertimeRatePerHour)
	check("holiday_rate", r.HolidayRate)
	check("late_deduction", r.LateDeduction)
	check("sss_rate", r.SSSRate)
	check("philhealth_rate", r.PhilHealthRate)
	check("pagibig_rate", r.PagIBIGRate)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RatesResponse struct {
	DailyRate           decimal.Decimal `json:"daily_rate"`
	OvertimeRatePerHour decimal.Decimal `json:"overtime_rate_per_hour"`
	HolidayRate         decimal.Decimal `json:"holiday_rate"`
	LateDeduction       decimal.Decimal `json:"late_deduction"`
	SSSRate             decimal.Decimal `json:"sss_rate"`
	PhilHealthRate      decimal.Decimal `json:"philhealth_rate"`
	PagIBIGRate         decimal.Decimal `json:"pagibig_rate"`
}

// Service is the payroll orchestration contract consumed by the HTTP
// layer: preview a run, save it, read saved batches, manage rates.
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	SaveBatch(ctx context.Context, req SaveBatchRequest) (BatchResponse, error)
	GetBatch(ctx context.Context, period string) (BatchResponse, error)
	ListBatches(ctx context.Context) ([]BatchResponse, error)
	GetRates(ctx context.Context) (RatesResponse, error)
	UpdateRates(ctx context.Context, req UpdateRatesRequest) (RatesResponse, error)
}
