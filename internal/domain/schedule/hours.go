package schedule

import (
	"strconv"
	"strings"
)

// minutesOfDay parses "HH:MM" into minutes since midnight. The bool is
// false for empty or malformed input; callers treat that as a
// non-working day, never as an error.
func minutesOfDay(t string) (int, bool) {
	h, m, ok := strings.Cut(t, ":")
	if !ok {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

// DayHours returns the hours between two "HH:MM" times as a decimal.
// Missing or malformed times yield 0. The result is signed: an end
// before the start goes negative, so overnight shifts must be adjusted
// by the caller before they reach here. Break time is not subtracted.
func DayHours(start, end string) float64 {
	startMin, ok := minutesOfDay(start)
	if !ok {
		return 0
	}
	endMin, ok := minutesOfDay(end)
	if !ok {
		return 0
	}
	return float64(endMin-startMin) / 60
}

// WeeklyHours sums DayHours over every enabled day of the schedule.
func WeeklyHours(ws WeeklySchedule) float64 {
	var total float64
	for _, day := range ws {
		if !day.Enabled {
			continue
		}
		total += DayHours(day.Start, day.End)
	}
	return total
}

// WorkingDaysCount counts the enabled days in the schedule.
func WorkingDaysCount(ws WeeklySchedule) int {
	count := 0
	for _, day := range ws {
		if day.Enabled {
			count++
		}
	}
	return count
}
