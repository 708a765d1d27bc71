package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one employee-day of attendance. A record is created at
// clock-in with TimeOut nil, mutated exactly once at clock-out, and is
// immutable for payroll purposes afterward. The persistence layer
// enforces at most one record per employee per date.
type Record struct {
	ID            string
	EmployeeID    string
	Date          string  // "YYYY-MM-DD"
	TimeIn        *string // "HH:MM:SS", nil until clocked in
	TimeOut       *string // "HH:MM:SS", nil until clocked out
	Status        string
	OvertimeHours decimal.Decimal
	IsHoliday     bool
	IsLate        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
}

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)
