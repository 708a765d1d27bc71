package payroll

import "context"

type Repository interface {
	// SaveBatch stores a payroll run under its period key, replacing
	// any batch previously saved for the same period.
	SaveBatch(ctx context.Context, batch Batch) (Batch, error)
	GetBatch(ctx context.Context, period string) (Batch, error)
	ListBatches(ctx context.Context) ([]Batch, error)

	// GetRates returns the stored rate configuration, or
	// ErrRatesNotFound when none has been saved yet.
	GetRates(ctx context.Context) (RateConfig, error)
	UpsertRates(ctx context.Context, rates RateConfig) (RateConfig, error)
}
