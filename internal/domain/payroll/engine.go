package payroll

import (
	"github.com/bizpanel/panel-backend-go/internal/domain/attendance"
	"github.com/bizpanel/panel-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// ComputeForEmployee produces one pay record from an employee and the
// attendance records already filtered to that employee and the target
// period. Filtering is deliberately the caller's job so the engine
// stays pure and period-representation-agnostic.
//
// The function never fails: zero or missing rates simply zero out the
// corresponding terms. Every currency field is rounded to two decimals
// once, at the end, so rounding error never compounds through the
// intermediate steps.
func ComputeForEmployee(emp user.User, periodAttendance []attendance.Record, rates RateConfig, period string) Record {
	daysWorked := 0
	holidaysWorked := 0
	lateDays := 0
	overtimeHours := decimal.Zero

	for _, r := range periodAttendance {
		// A day counts as worked when it is marked Present or has a
		// clock-in, whichever came first.
		if r.Status == attendance.StatusPresent || r.TimeIn != nil {
			daysWorked++
		}
		if r.IsHoliday {
			holidaysWorked++
		}
		if r.IsLate {
			lateDays++
		}
		overtimeHours = overtimeHours.Add(r.OvertimeHours)
	}

	basicPay := rates.DailyRate.Mul(decimal.NewFromInt(int64(daysWorked)))
	overtimePay := overtimeHours.Mul(rates.OvertimeRatePerHour)
	holidayPay := rates.HolidayRate.Mul(decimal.NewFromInt(int64(holidaysWorked)))
	nightDiff := decimal.Zero
	incentives := decimal.Zero
	adjustment := decimal.Zero

	totalAmount := basicPay.Add(overtimePay).Add(holidayPay).
		Add(nightDiff).Add(incentives).Add(adjustment)

	sss := totalAmount.Mul(rates.SSSRate)
	philHealth := totalAmount.Mul(rates.PhilHealthRate)
	pagIBIG := totalAmount.Mul(rates.PagIBIGRate)
	lateDeduction := rates.LateDeduction.Mul(decimal.NewFromInt(int64(lateDays)))
	loans := decimal.Zero
	penalty := decimal.Zero
	cashAdvance := decimal.Zero

	totalDeductions := sss.Add(philHealth).Add(pagIBIG).Add(lateDeduction).
		Add(loans).Add(penalty).Add(cashAdvance)

	netPay := totalAmount.Sub(totalDeductions)

	position := "N/A"
	if emp.Position != nil && *emp.Position != "" {
		position = *emp.Position
	}

	return Record{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Position:   position,
		Period:     period,
		Rate:       rates.DailyRate.Round(2),

		DaysWorked:     daysWorked,
		HolidaysWorked: holidaysWorked,
		LateDays:       lateDays,
		OvertimeHours:  overtimeHours.Round(2),

		BasicPay:          basicPay.Round(2),
		OvertimePay:       overtimePay.Round(2),
		HolidayPay:        holidayPay.Round(2),
		NightDifferential: nightDiff,
		Incentives:        incentives,
		Adjustment:        adjustment,
		TotalAmount:       totalAmount.Round(2),

		SSS:             sss.Round(2),
		PhilHealth:      philHealth.Round(2),
		PagIBIG:         pagIBIG.Round(2),
		LateDeduction:   lateDeduction.Round(2),
		Loans:           loans,
		Penalty:         penalty,
		CashAdvance:     cashAdvance,
		TotalDeductions: totalDeductions.Round(2),

		NetPay: netPay.Round(2),
	}
}
