package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthPeriodContains(t *testing.T) {
	p := MonthPeriod("2026-08")

	assert.True(t, p.Contains("2026-08-01"))
	assert.True(t, p.Contains("2026-08-31"))
	assert.False(t, p.Contains("2026-07-31"))
	assert.False(t, p.Contains("2026-09-01"))
	assert.Equal(t, "2026-08", p.Key())
}

func TestRangePeriodContains(t *testing.T) {
	p := RangePeriod("2026-08-01", "2026-08-15")

	assert.True(t, p.Contains("2026-08-01"))
	assert.True(t, p.Contains("2026-08-15"))
	assert.False(t, p.Contains("2026-07-31"))
	assert.False(t, p.Contains("2026-08-16"))
	assert.Equal(t, "2026-08-01_2026-08-15", p.Key())
}

func TestSemiMonthlyPeriod(t *testing.T) {
	cases := []struct {
		name      string
		date      time.Time
		wantStart string
		wantEnd   string
	}{
		{"first half", time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), "2026-08-01", "2026-08-15"},
		{"boundary day 15", time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), "2026-08-01", "2026-08-15"},
		{"second half", time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), "2026-08-16", "2026-08-31"},
		{"february", time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC), "2026-02-16", "2026-02-28"},
		{"leap february", time.Date(2028, 2, 25, 0, 0, 0, 0, time.UTC), "2028-02-16", "2028-02-29"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := SemiMonthlyPeriod(c.date)
			assert.Equal(t, c.wantStart, p.Start)
			assert.Equal(t, c.wantEnd, p.End)
		})
	}
}

func TestPeriodIsZero(t *testing.T) {
	assert.True(t, Period{}.IsZero())
	assert.False(t, MonthPeriod("2026-08").IsZero())
	assert.False(t, RangePeriod("2026-08-01", "2026-08-15").IsZero())
}
