package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizpanel/panel-backend-go/internal/domain/attendance"
	"github.com/bizpanel/panel-backend-go/internal/domain/notification"
	"github.com/bizpanel/panel-backend-go/internal/domain/payroll"
	"github.com/bizpanel/panel-backend-go/internal/domain/user"
)

type service struct {
	payrollRepo     payroll.Repository
	userRepo        user.Repository
	attendanceRepo  attendance.Repository
	notificationSvc notification.Service
}

func NewService(
	payrollRepo payroll.Repository,
	userRepo user.Repository,
	attendanceRepo attendance.Repository,
	notificationSvc notification.Service,
) payroll.Service {
	return &service{
		payrollRepo:     payrollRepo,
		userRepo:        userRepo,
		attendanceRepo:  attendanceRepo,
		notificationSvc: notificationSvc,
	}
}

// Generate computes a payroll preview for the requested period. Nothing
// is persisted; the caller reviews the records and saves them with
// SaveBatch.
func (s *service) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateResponse{}, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return payroll.GenerateResponse{}, fmt.Errorf("generate payroll: %w", err)
	}

	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return payroll.GenerateResponse{}, fmt.Errorf("generate payroll: %w", err)
	}

	rates, err := s.effectiveRates(ctx)
	if err != nil {
		return payroll.GenerateResponse{}, err
	}

	period := req.Period()
	payRecords, totals, err := payroll.Generate(users, records, rates, period)
	if err != nil {
		return payroll.GenerateResponse{}, err
	}

	return payroll.GenerateResponse{
		Period:  period.Key(),
		Records: payRecords,
		Totals:  totals,
	}, nil
}

// SaveBatch persists a reviewed payroll run under its period key.
// Saving the same period again replaces the earlier batch, so rerunning
// payroll after a correction never duplicates a period.
func (s *service) SaveBatch(ctx context.Context, req payroll.SaveBatchRequest) (payroll.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchResponse{}, err
	}

	gen := payroll.GenerateRequest{Month: req.Month, Start: req.Start, End: req.End}
	period := gen.Period()

	saved, err := s.payrollRepo.SaveBatch(ctx, payroll.Batch{
		Period:  period.Key(),
		Records: req.Records,
	})
	if err != nil {
		return payroll.BatchResponse{}, err
	}

	if s.notificationSvc != nil {
		recipientIDs := make([]string, 0, len(saved.Records))
		for _, r := range saved.Records {
			recipientIDs = append(recipientIDs, r.EmployeeID)
		}
		_ = s.notificationSvc.QueueForMany(ctx, recipientIDs, notification.CreateRequest{
			Type:    notification.TypePayrollGenerated,
			Title:   "Payroll Generated",
			Message: fmt.Sprintf("Your payslip for %s is ready.", saved.Period),
			Data: map[string]interface{}{
				"period": saved.Period,
			},
		})
	}

	return toBatchResponse(saved), nil
}

func (s *service) GetBatch(ctx context.Context, period string) (payroll.BatchResponse, error) {
	batch, err := s.payrollRepo.GetBatch(ctx, period)
	if err != nil {
		return payroll.BatchResponse{}, err
	}
	return toBatchResponse(batch), nil
}

func (s *service) ListBatches(ctx context.Context) ([]payroll.BatchResponse, error) {
	batches, err := s.payrollRepo.ListBatches(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.BatchResponse, 0, len(batches))
	for _, b := range batches {
		responses = append(responses, toBatchResponse(b))
	}
	return responses, nil
}

func (s *service) GetRates(ctx context.Context) (payroll.RatesResponse, error) {
	rates, err := s.effectiveRates(ctx)
	if err != nil {
		return payroll.RatesResponse{}, err
	}
	return toRatesResponse(rates), nil
}

// UpdateRates applies a partial update on top of the effective rates,
// so untouched fields keep their current values.
func (s *service) UpdateRates(ctx context.Context, req payroll.UpdateRatesRequest) (payroll.RatesResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RatesResponse{}, err
	}

	rates, err := s.effectiveRates(ctx)
	if err != nil {
		return payroll.RatesResponse{}, err
	}

	if req.DailyRate != nil {
		rates.DailyRate = *req.DailyRate
	}
	if req.OvertimeRatePerHour != nil {
		rates.OvertimeRatePerHour = *req.OvertimeRatePerHour
	}
	if req.HolidayRate != nil {
		rates.HolidayRate = *req.HolidayRate
	}
	if req.LateDeduction != nil {
		rates.LateDeduction = *req.LateDeduction
	}
	if req.SSSRate != nil {
		rates.SSSRate = *req.SSSRate
	}
	if req.PhilHealthRate != nil {
		rates.PhilHealthRate = *req.PhilHealthRate
	}
	if req.PagIBIGRate != nil {
		rates.PagIBIGRate = *req.PagIBIGRate
	}

	saved, err := s.payrollRepo.UpsertRates(ctx, rates)
	if err != nil {
		return payroll.RatesResponse{}, err
	}
	return toRatesResponse(saved), nil
}

// effectiveRates returns the stored rates, or the shipped defaults when
// none have been saved yet.
func (s *service) effectiveRates(ctx context.Context) (payroll.RateConfig, error) {
	rates, err := s.payrollRepo.GetRates(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrRatesNotFound) {
			return payroll.DefaultRateConfig(), nil
		}
		return payroll.RateConfig{}, fmt.Errorf("get payroll rates: %w", err)
	}
	return rates, nil
}

func toBatchResponse(b payroll.Batch) payroll.BatchResponse {
	return payroll.BatchResponse{
		ID:        b.ID,
		Period:    b.Period,
		Records:   b.Records,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func toRatesResponse(r payroll.RateConfig) payroll.RatesResponse {
	return payroll.RatesResponse{
		DailyRate:           r.DailyRate,
		OvertimeRatePerHour: r.OvertimeRatePerHour,
		HolidayRate:         r.HolidayRate,
		LateDeduction:       r.LateDeduction,
		SSSRate:             r.SSSRate,
		PhilHealthRate:      r.PhilHealthRate,
		PagIBIGRate:         r.PagIBIGRate,
	}
}
