package payroll

import (
	"fmt"
	"time"

	"github.com/bizpanel/panel-backend-go/internal/domain/attendance"
	"github.com/bizpanel/panel-backend-go/internal/domain/user"
)

// Generate runs the pay computation for every employee-role user and
// returns one record per employee, in input order, plus a field-wise
// totals record for the report footer.
//
// A corrupt attendance row (one that cannot be dated) aborts the whole
// run with the owning employee's id attached: a partial payroll run is
// worse than no run at all.
func Generate(users []user.User, allAttendance []attendance.Record, rates RateConfig, p Period) ([]Record, Record, error) {
	var records []Record

	for _, u := range users {
		if u.Role != user.RoleEmployee {
			continue
		}

		filtered, err := filterForEmployee(u.ID, allAttendance, p)
		if err != nil {
			return nil, Record{}, fmt.Errorf("generate payroll for employee %s: %w", u.ID, err)
		}

		records = append(records, ComputeForEmployee(u, filtered, rates, p.Key()))
	}

	return records, Totals(records, p.Key()), nil
}

// filterForEmployee slices the attendance set down to one employee and
// one period. Records with unparseable dates are treated as corruption,
// not silently skipped.
func filterForEmployee(employeeID string, all []attendance.Record, p Period) ([]attendance.Record, error) {
	var filtered []attendance.Record
	for _, r := range all {
		if r.EmployeeID != employeeID {
			continue
		}
		if _, err := time.Parse("2006-01-02", r.Date); err != nil {
			return nil, fmt.Errorf("attendance record %s has invalid date %q: %w", r.ID, r.Date, ErrCorruptAttendance)
		}
		if p.Contains(r.Date) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Totals sums every numeric field across the records. Identity fields
// stay empty; the result is only a summary row, never persisted as an
// employee record.
func Totals(records []Record, period string) Record {
	t := Record{Period: period}
	for _, r := range records {
		t.DaysWorked += r.DaysWorked
		t.HolidaysWorked += r.HolidaysWorked
		t.LateDays += r.LateDays
		t.OvertimeHours = t.OvertimeHours.Add(r.OvertimeHours)

		t.BasicPay = t.BasicPay.Add(r.BasicPay)
		t.OvertimePay = t.OvertimePay.Add(r.OvertimePay)
		t.HolidayPay = t.HolidayPay.Add(r.HolidayPay)
		t.NightDifferential = t.NightDifferential.Add(r.NightDifferential)
		t.Incentives = t.Incentives.Add(r.Incentives)
		t.Adjustment = t.Adjustment.Add(r.Adjustment)
		t.TotalAmount = t.TotalAmount.Add(r.TotalAmount)

		t.SSS = t.SSS.Add(r.SSS)
		t.PhilHealth = t.PhilHealth.Add(r.PhilHealth)
		t.PagIBIG = t.PagIBIG.Add(r.PagIBIG)
		t.LateDeduction = t.LateDeduction.Add(r.LateDeduction)
		t.Loans = t.Loans.Add(r.Loans)
		t.Penalty = t.Penalty.Add(r.Penalty)
		t.CashAdvance = t.CashAdvance.Add(r.CashAdvance)
		t.TotalDeductions = t.TotalDeductions.Add(r.TotalDeductions)

		t.NetPay = t.NetPay.Add(r.NetPay)
	}
	return t
}
