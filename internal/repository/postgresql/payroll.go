package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bizpanel/panel-backend-go/internal/domain/payroll"
	"github.com/bizpanel/panel-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

// Batches are stored whole as JSONB. Payroll records are an immutable
// snapshot of a run; nothing ever queries individual line items, so a
// relational breakdown would buy nothing.
func (r *payrollRepository) SaveBatch(ctx context.Context, batch payroll.Batch) (payroll.Batch, error) {
	q := GetQuerier(ctx, r.db)

	recordsJSON, err := json.Marshal(batch.Records)
	if err != nil {
		return payroll.Batch{}, fmt.Errorf("failed to encode payroll batch: %w", err)
	}

	query := `
		INSERT INTO payroll_batches (period, records)
		VALUES ($1, $2)
		ON CONFLICT (period) DO UPDATE
		SET records = EXCLUDED.records, created_at = NOW()
		RETURNING id, created_at
	`

	saved := payroll.Batch{Period: batch.Period, Records: batch.Records}
	err = q.QueryRow(ctx, query, batch.Period, recordsJSON).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return payroll.Batch{}, fmt.Errorf("failed to save payroll batch: %w", err)
	}
	return saved, nil
}

func (r *payrollRepository) GetBatch(ctx context.Context, period string) (payroll.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period, records, created_at
		FROM payroll_batches
		WHERE period = $1
	`

	var batch payroll.Batch
	var recordsJSON []byte
	err := q.QueryRow(ctx, query, period).Scan(&batch.ID, &batch.Period, &recordsJSON, &batch.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Batch{}, payroll.ErrBatchNotFound
		}
		return payroll.Batch{}, fmt.Errorf("failed to get payroll batch: %w", err)
	}

	if err := json.Unmarshal(recordsJSON, &batch.Records); err != nil {
		return payroll.Batch{}, fmt.Errorf("failed to decode payroll batch: %w", err)
	}
	return batch, nil
}

func (r *payrollRepository) ListBatches(ctx context.Context) ([]payroll.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period, records, created_at
		FROM payroll_batches
		ORDER BY period DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll batches: %w", err)
	}
	defer rows.Close()

	var batches []payroll.Batch
	for rows.Next() {
		var batch payroll.Batch
		var recordsJSON []byte
		if err := rows.Scan(&batch.ID, &batch.Period, &recordsJSON, &batch.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payroll batch: %w", err)
		}
		if err := json.Unmarshal(recordsJSON, &batch.Records); err != nil {
			return nil, fmt.Errorf("failed to decode payroll batch: %w", err)
		}
		batches = append(batches, batch)
	}
	return batches, rows.Err()
}

func (r *payrollRepository) GetRates(ctx context.Context) (payroll.RateConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT daily_rate, overtime_rate_per_hour, holiday_rate, late_deduction,
			sss_rate, philhealth_rate, pagibig_rate, updated_at
		FROM payroll_rates
		WHERE id = 1
	`

	var rates payroll.RateConfig
	err := q.QueryRow(ctx, query).Scan(
		&rates.DailyRate, &rates.OvertimeRatePerHour, &rates.HolidayRate,
		&rates.LateDeduction, &rates.SSSRate, &rates.PhilHealthRate,
		&rates.PagIBIGRate, &rates.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.RateConfig{}, payroll.ErrRatesNotFound
		}
		return payroll.RateConfig{}, fmt.Errorf("failed to get payroll rates: %w", err)
	}
	return rates, nil
}

func (r *payrollRepository) UpsertRates(ctx context.Context, rates payroll.RateConfig) (payroll.RateConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_rates (id, daily_rate, overtime_rate_per_hour, holiday_rate,
			late_deduction, sss_rate, philhealth_rate, pagibig_rate)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			daily_rate = EXCLUDED.daily_rate,
			overtime_rate_per_hour = EXCLUDED.overtime_rate_per_hour,
			holiday_rate = EXCLUDED.holiday_rate,
			late_deduction = EXCLUDED.late_deduction,
			sss_rate = EXCLUDED.sss_rate,
			philhealth_rate = EXCLUDED.philhealth_rate,
			pagibig_rate = EXCLUDED.pagibig_rate,
			updated_at = NOW()
		RETURNING updated_at
	`

	saved := rates
	err := q.QueryRow(ctx, query,
		rates.DailyRate, rates.OvertimeRatePerHour, rates.HolidayRate,
		rates.LateDeduction, rates.SSSRate, rates.PhilHealthRate, rates.PagIBIGRate,
	).Scan(&saved.UpdatedAt)
	if err != nil {
		return payroll.RateConfig{}, fmt.Errorf("failed to save payroll rates: %w", err)
	}
	return saved, nil
}
