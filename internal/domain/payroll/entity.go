package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateConfig holds the business-wide pay rates. It is always passed
// explicitly into computations; nothing in this package reads rates
// from global state.
type RateConfig struct {
	DailyRate           decimal.Decimal
	OvertimeRatePerHour decimal.Decimal
	HolidayRate         decimal.Decimal
	LateDeduction       decimal.Decimal // flat amount per late day
	SSSRate             decimal.Decimal // fraction of gross, e.g. 0.045
	PhilHealthRate      decimal.Decimal
	PagIBIGRate         decimal.Decimal
	UpdatedAt           time.Time
}

// DefaultRateConfig returns the rates the panel ships with. The
// overtime rate is a flat 12% of the daily rate per hour, not an
// hourly-prorated premium; that is the established business rule here.
func DefaultRateConfig() RateConfig {
	dailyRate := decimal.NewFromFloat(415.00)
	return RateConfig{
		DailyRate:           dailyRate,
		OvertimeRatePerHour: dailyRate.Mul(decimal.NewFromFloat(0.12)),
		HolidayRate:         decimal.NewFromFloat(124.50),
		LateDeduction:       decimal.NewFromFloat(50.00),
		SSSRate:             decimal.NewFromFloat(0.045),
		PhilHealthRate:      decimal.NewFromFloat(0.02),
		PagIBIGRate:         decimal.NewFromFloat(0.02),
	}
}

// Record is one employee's pay breakdown for a period. Immutable once
// generated. NightDifferential, Incentives, Adjustment, Loans, Penalty
// and CashAdvance are schema placeholders that always compute to zero;
// they stay in the shape so stored batches remain forward-compatible.
type Record struct {
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"employee_name"`
	Position   string          `json:"employee_position"`
	Period     string          `json:"period"`
	Rate       decimal.Decimal `json:"rate"`

	DaysWorked     int             `json:"days_worked"`
	HolidaysWorked int             `json:"holidays_worked"`
	LateDays       int             `json:"late_days"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`

	BasicPay          decimal.Decimal `json:"basic_pay"`
	OvertimePay       decimal.Decimal `json:"overtime_pay"`
	HolidayPay        decimal.Decimal `json:"holiday_pay"`
	NightDifferential decimal.Decimal `json:"night_differential"`
	Incentives        decimal.Decimal `json:"incentives"`
	Adjustment        decimal.Decimal `json:"adjustment"`
	TotalAmount       decimal.Decimal `json:"total_amount"`

	SSS             decimal.Decimal `json:"sss"`
	PhilHealth      decimal.Decimal `json:"philhealth"`
	PagIBIG         decimal.Decimal `json:"pagibig"`
	LateDeduction   decimal.Decimal `json:"late_deduction"`
	Loans           decimal.Decimal `json:"loans"`
	Penalty         decimal.Decimal `json:"penalty"`
	CashAdvance     decimal.Decimal `json:"cash_advance"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`

	NetPay decimal.Decimal `json:"net_pay"`
}

// Batch is a persisted payroll run. Exactly one batch exists per
// period key; saving again for the same period replaces it.
type Batch struct {
	ID        string
	Period    string
	Records   []Record
	CreatedAt time.Time
}
