package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bizpanel/panel-backend-go/internal/domain/schedule"
	"github.com/bizpanel/panel-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.EmployeeSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, week, created_at, updated_at
		FROM employee_schedules
		WHERE employee_id = $1
	`

	var es schedule.EmployeeSchedule
	var weekJSON []byte
	err := q.QueryRow(ctx, query, employeeID).Scan(&es.EmployeeID, &weekJSON, &es.CreatedAt, &es.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.EmployeeSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.EmployeeSchedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	if err := json.Unmarshal(weekJSON, &es.Week); err != nil {
		return schedule.EmployeeSchedule{}, fmt.Errorf("failed to decode schedule: %w", err)
	}
	return es, nil
}

func (r *scheduleRepository) Replace(ctx context.Context, employeeID string, week schedule.WeeklySchedule) (schedule.EmployeeSchedule, error) {
	q := GetQuerier(ctx, r.db)

	weekJSON, err := json.Marshal(week)
	if err != nil {
		return schedule.EmployeeSchedule{}, fmt.Errorf("failed to encode schedule: %w", err)
	}

	query := `
		INSERT INTO employee_schedules (employee_id, week)
		VALUES ($1, $2)
		ON CONFLICT (employee_id) DO UPDATE
		SET week = EXCLUDED.week, updated_at = NOW()
		RETURNING employee_id, created_at, updated_at
	`

	es := schedule.EmployeeSchedule{Week: week}
	err = q.QueryRow(ctx, query, employeeID, weekJSON).Scan(&es.EmployeeID, &es.CreatedAt, &es.UpdatedAt)
	if err != nil {
		return schedule.EmployeeSchedule{}, fmt.Errorf("failed to replace schedule: %w", err)
	}
	return es, nil
}

func (r *scheduleRepository) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_schedules WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}
