package payroll

import (
	"context"
	"testing"

	"github.com/bizpanel/panel-backend-go/internal/domain/attendance"
	"github.com/bizpanel/panel-backend-go/internal/domain/payroll"
	"github.com/bizpanel/panel-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, req user.UpdateUserRequest) error {
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, r attendance.Record) error {
	return nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) List(ctx context.Context) ([]attendance.Record, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListOpen(ctx context.Context, before string) ([]attendance.Record, error) {
	return nil, nil
}

type fakePayrollRepo struct {
	batches map[string]payroll.Batch
	rates   *payroll.RateConfig
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{batches: make(map[string]payroll.Batch)}
}

func (f *fakePayrollRepo) SaveBatch(ctx context.Context, batch payroll.Batch) (payroll.Batch, error) {
	batch.ID = "batch-" + batch.Period
	f.batches[batch.Period] = batch
	return batch, nil
}

func (f *fakePayrollRepo) GetBatch(ctx context.Context, period string) (payroll.Batch, error) {
	batch, ok := f.batches[period]
	if !ok {
		return payroll.Batch{}, payroll.ErrBatchNotFound
	}
	return batch, nil
}

func (f *fakePayrollRepo) ListBatches(ctx context.Context) ([]payroll.Batch, error) {
	var out []payroll.Batch
	for _, b := range f.batches {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakePayrollRepo) GetRates(ctx context.Context) (payroll.RateConfig, error) {
	if f.rates == nil {
		return payroll.RateConfig{}, payroll.ErrRatesNotFound
	}
	return *f.rates, nil
}

func (f *fakePayrollRepo) UpsertRates(ctx context.Context, rates payroll.RateConfig) (payroll.RateConfig, error) {
	f.rates = &rates
	return rates, nil
}

func testUsers() []user.User {
	position := "Cashier"
	return []user.User{
		{ID: "owner-1", Name: "Owner", Role: user.RoleOwner},
		{ID: "emp-1", Name: "Ana Reyes", Role: user.RoleEmployee, Position: &position,
			DailyRate: decimal.NewFromFloat(415.00)},
	}
}

func TestGenerate_UsesDefaultRatesWhenNoneStored(t *testing.T) {
	timeIn := "08:00:00"
	svc := NewService(newFakePayrollRepo(), &fakeUserRepo{users: testUsers()}, &fakeAttendanceRepo{
		records: []attendance.Record{
			{ID: "a1", EmployeeID: "emp-1", Date: "2025-03-03", TimeIn: &timeIn, Status: attendance.StatusPresent},
			{ID: "a2", EmployeeID: "emp-1", Date: "2025-03-04", TimeIn: &timeIn, Status: attendance.StatusPresent},
		},
	}, nil)

	resp, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "2025-03"})
	require.NoError(t, err)

	require.Len(t, resp.Records, 1)
	assert.Equal(t, "2025-03", resp.Period)
	assert.Equal(t, 2, resp.Records[0].DaysWorked)
	assert.Equal(t, "830.00", resp.Records[0].BasicPay.StringFixed(2))
	assert.Equal(t, "830.00", resp.Totals.BasicPay.StringFixed(2))
}

func TestGenerate_InvalidPeriodRejected(t *testing.T) {
	svc := NewService(newFakePayrollRepo(), &fakeUserRepo{}, &fakeAttendanceRepo{}, nil)

	tests := []struct {
		name string
		req  payroll.GenerateRequest
	}{
		{name: "empty request", req: payroll.GenerateRequest{}},
		{name: "malformed month", req: payroll.GenerateRequest{Month: "2025-13"}},
		{name: "month and range together", req: payroll.GenerateRequest{Month: "2025-03", Start: "2025-03-01", End: "2025-03-15"}},
		{name: "range end before start", req: payroll.GenerateRequest{Start: "2025-03-16", End: "2025-03-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestSaveBatch_ReplacesSamePeriod(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := NewService(repo, &fakeUserRepo{}, &fakeAttendanceRepo{}, nil)

	first := payroll.SaveBatchRequest{
		Month:   "2025-03",
		Records: []payroll.Record{{EmployeeID: "emp-1", Period: "2025-03", DaysWorked: 10}},
	}
	_, err := svc.SaveBatch(context.Background(), first)
	require.NoError(t, err)

	second := payroll.SaveBatchRequest{
		Month:   "2025-03",
		Records: []payroll.Record{{EmployeeID: "emp-1", Period: "2025-03", DaysWorked: 12}},
	}
	resp, err := svc.SaveBatch(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, "2025-03", resp.Period)
	require.Len(t, repo.batches, 1)
	assert.Equal(t, 12, repo.batches["2025-03"].Records[0].DaysWorked)
}

func TestSaveBatch_RangePeriodKey(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := NewService(repo, &fakeUserRepo{}, &fakeAttendanceRepo{}, nil)

	resp, err := svc.SaveBatch(context.Background(), payroll.SaveBatchRequest{
		Start:   "2025-03-01",
		End:     "2025-03-15",
		Records: []payroll.Record{{EmployeeID: "emp-1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01_2025-03-15", resp.Period)
}

func TestGetRates_FallsBackToDefaults(t *testing.T) {
	svc := NewService(newFakePayrollRepo(), &fakeUserRepo{}, &fakeAttendanceRepo{}, nil)

	rates, err := svc.GetRates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "415.00", rates.DailyRate.StringFixed(2))
	assert.Equal(t, "49.80", rates.OvertimeRatePerHour.StringFixed(2))
	assert.Equal(t, "0.045", rates.SSSRate.String())
}

func TestUpdateRates_PartialUpdateKeepsOtherFields(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := NewService(repo, &fakeUserRepo{}, &fakeAttendanceRepo{}, nil)

	newDaily := decimal.NewFromFloat(500.00)
	rates, err := svc.UpdateRates(context.Background(), payroll.UpdateRatesRequest{DailyRate: &newDaily})
	require.NoError(t, err)

	assert.Equal(t, "500.00", rates.DailyRate.StringFixed(2))
	// Untouched fields keep the shipped defaults.
	assert.Equal(t, "124.50", rates.HolidayRate.StringFixed(2))
	assert.Equal(t, "50.00", rates.LateDeduction.StringFixed(2))
}

func TestUpdateRates_RejectsNegative(t *testing.T) {
	svc := NewService(newFakePayrollRepo(), &fakeUserRepo{}, &fakeAttendanceRepo{}, nil)

	negative := decimal.NewFromFloat(-1)
	_, err := svc.UpdateRates(context.Background(), payroll.UpdateRatesRequest{SSSRate: &negative})
	assert.Error(t, err)
}

func TestGetBatch_NotFound(t *testing.T) {
	svc := NewService(newFakePayrollRepo(), &fakeUserRepo{}, &fakeAttendanceRepo{}, nil)

	_, err := svc.GetBatch(context.Background(), "2025-01")
	assert.ErrorIs(t, err, payroll.ErrBatchNotFound)
}
