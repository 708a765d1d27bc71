package notification

import "time"

// Type tags what triggered a notification.
type Type string

const (
	TypeAttendanceClockIn    Type = "attendance_clock_in"
	TypeAttendanceClockOut   Type = "attendance_clock_out"
	TypeAttendanceAutoClosed Type = "attendance_auto_closed"
	TypeScheduleUpdated      Type = "schedule_updated"
	TypePayrollGenerated     Type = "payroll_generated"
)

// Notification is a stored message for one recipient, also pushed live
// over SSE when the recipient is connected.
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        Type
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
