package payroll

import (
	"testing"

	"github.com/bizpanel/panel-backend-go/internal/domain/attendance"
	"github.com/bizpanel/panel-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testEmployee() user.User {
	return user.User{
		ID:       "emp-1",
		Name:     "Maria Santos",
		Role:     user.RoleEmployee,
		Position: strPtr("Cashier"),
	}
}

func TestComputeForEmployeeBasicPay(t *testing.T) {
	rates := DefaultRateConfig()
	records := []attendance.Record{
		{EmployeeID: "emp-1", Date: "2026-08-03", Status: attendance.StatusPresent},
		{EmployeeID: "emp-1", Date: "2026-08-04", Status: attendance.StatusPresent},
	}

	got := ComputeForEmployee(testEmployee(), records, rates, "2026-08")

	assert.Equal(t, 2, got.DaysWorked)
	assert.True(t, got.BasicPay.Equal(decimal.NewFromFloat(830.00)), "basic pay = %s", got.BasicPay)
	assert.Equal(t, "2026-08", got.Period)
	assert.Equal(t, "Maria Santos", got.Name)
	assert.Equal(t, "Cashier", got.Position)
}

func TestComputeForEmployeeDaysWorkedOrCondition(t *testing.T) {
	rates := DefaultRateConfig()
	records := []attendance.Record{
		// Counted: explicit Present status, no clock-in.
		{Date: "2026-08-03", Status: attendance.StatusPresent},
		// Counted: clock-in present, status something else.
		{Date: "2026-08-04", Status: "Late", TimeIn: strPtr("08:12:00")},
		// Not counted: neither.
		{Date: "2026-08-05", Status: attendance.StatusAbsent},
	}

	got := ComputeForEmployee(testEmployee(), records, rates, "2026-08")

	assert.Equal(t, 2, got.DaysWorked)
}

func TestComputeForEmployeeDeductions(t *testing.T) {
	// Daily rate of 500 over two days gives a clean 1000.00 gross.
	rates := DefaultRateConfig()
	rates.DailyRate = decimal.NewFromFloat(500.00)

	records := []attendance.Record{
		{Date: "2026-08-03", Status: attendance.StatusPresent},
		{Date: "2026-08-04", Status: attendance.StatusPresent},
	}

	got := ComputeForEmployee(testEmployee(), records, rates, "2026-08")

	assert.True(t, got.TotalAmount.Equal(decimal.NewFromFloat(1000.00)), "total = %s", got.TotalAmount)
	assert.True(t, got.SSS.Equal(decimal.NewFromFloat(45.00)), "sss = %s", got.SSS)
	assert.True(t, got.PhilHealth.Equal(decimal.NewFromFloat(20.00)), "philhealth = %s", got.PhilHealth)
	assert.True(t, got.PagIBIG.Equal(decimal.NewFromFloat(20.00)), "pagibig = %s", got.PagIBIG)
	assert.True(t, got.TotalDeductions.Equal(decimal.NewFromFloat(85.00)), "deductions = %s", got.TotalDeductions)
	assert.True(t, got.NetPay.Equal(decimal.NewFromFloat(915.00)), "net = %s", got.NetPay)
}

func TestComputeForEmployeeOvertimeAndHoliday(t *testing.T) {
	rates := DefaultRateConfig()
	records := []attendance.Record{
		{
			Date:          "2026-08-03",
			Status:        attendance.StatusPresent,
			OvertimeHours: decimal.NewFromFloat(2),
			IsHoliday:     true,
			IsLate:        true,
		},
	}

	got := ComputeForEmployee(testEmployee(), records, rates, "2026-08")

	// Overtime: 2h at 12% of the 415.00 daily rate = 49.80/h.
	assert.True(t, got.OvertimePay.Equal(decimal.NewFromFloat(99.60)), "overtime pay = %s", got.OvertimePay)
	assert.Equal(t, 1, got.HolidaysWorked)
	assert.True(t, got.HolidayPay.Equal(decimal.NewFromFloat(124.50)), "holiday pay = %s", got.HolidayPay)
	assert.Equal(t, 1, got.LateDays)
	assert.True(t, got.LateDeduction.Equal(decimal.NewFromFloat(50.00)), "late deduction = %s", got.LateDeduction)
}

func TestComputeForEmployeeZeroRates(t *testing.T) {
	// Absent rates zero out the terms; nothing errors.
	records := []attendance.Record{
		{Date: "2026-08-03", Status: attendance.StatusPresent, IsLate: true},
	}

	got := ComputeForEmployee(testEmployee(), records, RateConfig{}, "2026-08")

	assert.True(t, got.TotalAmount.IsZero())
	assert.True(t, got.TotalDeductions.IsZero())
	assert.True(t, got.NetPay.IsZero())
}

func TestComputeForEmployeeEmptyAttendance(t *testing.T) {
	got := ComputeForEmployee(testEmployee(), nil, DefaultRateConfig(), "2026-08")

	assert.Equal(t, 0, got.DaysWorked)
	assert.True(t, got.NetPay.IsZero())
}

func TestComputeForEmployeePlaceholdersStayZero(t *testing.T) {
	records := []attendance.Record{
		{Date: "2026-08-03", Status: attendance.StatusPresent},
	}

	got := ComputeForEmployee(testEmployee(), records, DefaultRateConfig(), "2026-08")

	assert.True(t, got.NightDifferential.IsZero())
	assert.True(t, got.Incentives.IsZero())
	assert.True(t, got.Adjustment.IsZero())
	assert.True(t, got.Loans.IsZero())
	assert.True(t, got.Penalty.IsZero())
	assert.True(t, got.CashAdvance.IsZero())
}

func TestComputeForEmployeeDeterministic(t *testing.T) {
	rates := DefaultRateConfig()
	records := []attendance.Record{
		{Date: "2026-08-03", Status: attendance.StatusPresent, OvertimeHours: decimal.NewFromFloat(1.5)},
		{Date: "2026-08-04", Status: attendance.StatusPresent, IsLate: true},
	}

	first := ComputeForEmployee(testEmployee(), records, rates, "2026-08")
	second := ComputeForEmployee(testEmployee(), records, rates, "2026-08")

	require.Equal(t, first, second)
}
