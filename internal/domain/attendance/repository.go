package attendance

import "context"

type Repository interface {
	Create(ctx context.Context, record Record) (Record, error)
	Update(ctx context.Context, record Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	// ListOpen returns records that have a clock-in but no clock-out,
	// dated strictly before the given date. Used by the close-out job.
	ListOpen(ctx context.Context, before string) ([]Record, error)
}
