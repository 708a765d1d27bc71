package payroll

import (
	"fmt"
	"strings"
	"time"
)

// Period selects the attendance slice for one payroll run. Callers use
// either a whole calendar month or an explicit inclusive date range;
// both comparisons are plain string operations, which is sound because
// dates are zero-padded ISO strings.
type Period struct {
	Month string // "YYYY-MM"; when set, matched by date prefix
	Start string // "YYYY-MM-DD", inclusive; used when Month is empty
	End   string // "YYYY-MM-DD", inclusive
}

func MonthPeriod(month string) Period {
	return Period{Month: month}
}

func RangePeriod(start, end string) Period {
	return Period{Start: start, End: end}
}

// SemiMonthlyPeriod returns the half-month range containing t:
// the 1st through the 15th, or the 16th through the end of the month.
func SemiMonthlyPeriod(t time.Time) Period {
	year, month, day := t.Date()
	if day <= 15 {
		return RangePeriod(
			fmt.Sprintf("%04d-%02d-01", year, month),
			fmt.Sprintf("%04d-%02d-15", year, month),
		)
	}
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, t.Location()).Day()
	return RangePeriod(
		fmt.Sprintf("%04d-%02d-16", year, month),
		fmt.Sprintf("%04d-%02d-%02d", year, month, lastDay),
	)
}

// Contains reports whether an ISO date falls inside the period.
func (p Period) Contains(date string) bool {
	if p.Month != "" {
		return strings.HasPrefix(date, p.Month)
	}
	return date >= p.Start && date <= p.End
}

// Key is the identifier a saved batch is stored under.
func (p Period) Key() string {
	if p.Month != "" {
		return p.Month
	}
	return p.Start + "_" + p.End
}

func (p Period) IsZero() bool {
	return p.Month == "" && p.Start == "" && p.End == ""
}
