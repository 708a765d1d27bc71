package schedule

import "context"

type Repository interface {
	// GetByEmployeeID returns the stored schedule, or ErrScheduleNotFound
	// when the employee has never had one saved.
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeSchedule, error)

	// Replace stores the full weekly schedule, overwriting any previous
	// one. Schedules are never partially updated.
	Replace(ctx context.Context, employeeID string, week WeeklySchedule) (EmployeeSchedule, error)

	Delete(ctx context.Context, employeeID string) error
}
