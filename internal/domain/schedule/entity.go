package schedule

import "time"

// DaySchedule is the working window for a single day of the week.
// When Enabled is false the day contributes nothing regardless of the
// literal Start/End values.
type DaySchedule struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // "HH:MM" or ""
	End     string `json:"end"`   // "HH:MM" or ""
	Break   string `json:"break"` // "HH:MM-HH:MM" or "", informational only
}

// WeeklySchedule maps day names (monday..sunday) to their working windows.
type WeeklySchedule map[string]DaySchedule

// DayNames lists the week days in display order. Iterating the map
// directly is fine for arithmetic; use this when order matters.
var DayNames = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// EmployeeSchedule is a stored weekly schedule for one employee.
type EmployeeSchedule struct {
	EmployeeID string
	Week       WeeklySchedule
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DefaultWeeklySchedule returns the schedule assigned at employee creation:
// Mon-Fri 08:00-17:00 with a 12:00-13:00 break, Sat 08:00-12:00, Sun off.
func DefaultWeeklySchedule() WeeklySchedule {
	weekday := DaySchedule{Enabled: true, Start: "08:00", End: "17:00", Break: "12:00-13:00"}
	return WeeklySchedule{
		"monday":    weekday,
		"tuesday":   weekday,
		"wednesday": weekday,
		"thursday":  weekday,
		"friday":    weekday,
		"saturday":  {Enabled: true, Start: "08:00", End: "12:00"},
		"sunday":    {},
	}
}
