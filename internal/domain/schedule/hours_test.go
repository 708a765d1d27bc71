package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayHours(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"full day", "08:00", "17:00", 9.0},
		{"half day", "08:00", "12:00", 4.0},
		{"partial hour", "08:30", "17:00", 8.5},
		{"zero length", "08:00", "08:00", 0},
		{"missing start", "", "17:00", 0},
		{"missing end", "08:00", "", 0},
		{"both missing", "", "", 0},
		{"malformed start", "8am", "17:00", 0},
		{"malformed end", "08:00", "late", 0},
		{"end before start goes negative", "17:00", "08:00", -9.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DayHours(c.start, c.end))
		})
	}
}

func TestWeeklyHoursDefault(t *testing.T) {
	ws := DefaultWeeklySchedule()

	// Mon-Fri 9h each plus Saturday 4h. Break windows are informational
	// and never deducted.
	assert.Equal(t, 49.0, WeeklyHours(ws))
	assert.Equal(t, 6, WorkingDaysCount(ws))
}

func TestWeeklyHoursAllDisabled(t *testing.T) {
	ws := WeeklySchedule{}
	for _, day := range DayNames {
		ws[day] = DaySchedule{Enabled: false, Start: "08:00", End: "17:00"}
	}

	assert.Equal(t, 0.0, WeeklyHours(ws))
	assert.Equal(t, 0, WorkingDaysCount(ws))
}

func TestWeeklyHoursIgnoresDisabledDayValues(t *testing.T) {
	ws := DefaultWeeklySchedule()

	// A disabled day keeps its literal times but contributes nothing.
	ws["monday"] = DaySchedule{Enabled: false, Start: "00:00", End: "23:00"}

	assert.Equal(t, 40.0, WeeklyHours(ws))
	assert.Equal(t, 5, WorkingDaysCount(ws))
}

func TestWeeklyHoursPartiallyFilled(t *testing.T) {
	// Enabled day with blank times degrades to zero hours, not an error.
	ws := WeeklySchedule{
		"monday":  {Enabled: true, Start: "", End: ""},
		"tuesday": {Enabled: true, Start: "09:00", End: "13:00"},
	}

	assert.Equal(t, 4.0, WeeklyHours(ws))
	assert.Equal(t, 2, WorkingDaysCount(ws))
}
