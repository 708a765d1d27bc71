package attendance

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/bizpanel/panel-backend-go/internal/domain/attendance"
	"github.com/bizpanel/panel-backend-go/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Record // keyed by employeeID|date
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
}

func (f *fakeAttendanceRepo) key(employeeID, date string) string {
	return employeeID + "|" + date
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	f.nextID++
	r.ID = "att-" + strconv.Itoa(f.nextID)
	f.records[f.key(r.EmployeeID, r.Date)] = r
	return r, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, r attendance.Record) error {
	f.records[f.key(r.EmployeeID, r.Date)] = r
	return nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (attendance.Record, error) {
	r, ok := f.records[f.key(employeeID, date)]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
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
	var out []attendance.Record
	for _, r := range f.records {
		if r.TimeIn != nil && r.TimeOut == nil && r.Date < before {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeScheduleRepo struct {
	schedules map[string]schedule.EmployeeSchedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]schedule.EmployeeSchedule)}
}

func (f *fakeScheduleRepo) GetByEmployeeID(ctx context.Context, employeeID string) (schedule.EmployeeSchedule, error) {
	es, ok := f.schedules[employeeID]
	if !ok {
		return schedule.EmployeeSchedule{}, schedule.ErrScheduleNotFound
	}
	return es, nil
}

func (f *fakeScheduleRepo) Replace(ctx context.Context, employeeID string, week schedule.WeeklySchedule) (schedule.EmployeeSchedule, error) {
	es := schedule.EmployeeSchedule{EmployeeID: employeeID, Week: week}
	f.schedules[employeeID] = es
	return es, nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, employeeID string) error {
	delete(f.schedules, employeeID)
	return nil
}

// newTestService builds a service with a frozen clock. The dates below
// are chosen so 2025-03-03 is a Monday with the default 08:00 start.
func newTestService(attendanceRepo attendance.Repository, scheduleRepo schedule.Repository, at time.Time) *service {
	return &service{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		now:            func() time.Time { return at },
	}
}

func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, 3, 3, hour, minute, 0, 0, time.UTC)
}

func TestClockIn_OnTime(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeScheduleRepo(), mondayAt(7, 58))

	resp, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-03", resp.Date)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	require.NotNil(t, resp.TimeIn)
	assert.Equal(t, "07:58:00", *resp.TimeIn)
	assert.False(t, resp.IsLate)
}

func TestClockIn_WithinGraceIsNotLate(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeScheduleRepo(), mondayAt(8, 5))

	resp, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.False(t, resp.IsLate)
}

func TestClockIn_PastGraceIsLate(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeScheduleRepo(), mondayAt(8, 6))

	resp, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.True(t, resp.IsLate)
}

func TestClockIn_TwiceSameDayRejected(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, newFakeScheduleRepo(), mondayAt(8, 0))

	_, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockIn_DisabledDayNeverLate(t *testing.T) {
	// Sunday is disabled in the default week, so any clock-in time is
	// accepted without a late flag.
	sunday := time.Date(2025, 3, 2, 14, 30, 0, 0, time.UTC)
	svc := newTestService(newFakeAttendanceRepo(), newFakeScheduleRepo(), sunday)

	resp, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.False(t, resp.IsLate)
}

func TestClockOut_WithoutClockInRejected(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeScheduleRepo(), mondayAt(17, 0))

	_, err := svc.ClockOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOut_BeforeScheduledEndNoOvertime(t *testing.T) {
	repo := newFakeAttendanceRepo()

	svc := newTestService(repo, newFakeScheduleRepo(), mondayAt(8, 0))
	_, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc = newTestService(repo, newFakeScheduleRepo(), mondayAt(16, 30))
	resp, err := svc.ClockOut(context.Background(), "emp-1")
	require.NoError(t, err)

	require.NotNil(t, resp.TimeOut)
	assert.Equal(t, "16:30:00", *resp.TimeOut)
	assert.True(t, resp.OvertimeHours.IsZero())
}

func TestClockOut_PastScheduledEndAccruesOvertime(t *testing.T) {
	repo := newFakeAttendanceRepo()

	svc := newTestService(repo, newFakeScheduleRepo(), mondayAt(8, 0))
	_, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)

	// Default Monday ends 17:00; 19:30 is 2.5 hours over.
	svc = newTestService(repo, newFakeScheduleRepo(), mondayAt(19, 30))
	resp, err := svc.ClockOut(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "2.5", resp.OvertimeHours.String())
}

func TestClockOut_TwiceRejected(t *testing.T) {
	repo := newFakeAttendanceRepo()

	svc := newTestService(repo, newFakeScheduleRepo(), mondayAt(8, 0))
	_, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc = newTestService(repo, newFakeScheduleRepo(), mondayAt(17, 0))
	_, err = svc.ClockOut(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.ClockOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestClockIn_UsesStoredScheduleOverDefault(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	week := schedule.DefaultWeeklySchedule()
	day := week["monday"]
	day.Start = "10:00"
	week["monday"] = day
	_, err := scheduleRepo.Replace(context.Background(), "emp-1", week)
	require.NoError(t, err)

	// 08:30 would be late against the default 08:00 start, but the
	// stored schedule starts at 10:00.
	svc := newTestService(newFakeAttendanceRepo(), scheduleRepo, mondayAt(8, 30))

	resp, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.False(t, resp.IsLate)
}

func TestAmend_UpdatesOnlyProvidedFields(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, newFakeScheduleRepo(), mondayAt(8, 0))

	created, err := svc.ClockIn(context.Background(), "emp-1")
	require.NoError(t, err)

	isHoliday := true
	overtime := decimal.NewFromFloat(1.5)
	resp, err := svc.Amend(context.Background(), attendance.AmendRequest{
		ID:            created.ID,
		IsHoliday:     &isHoliday,
		OvertimeHours: &overtime,
	})
	require.NoError(t, err)

	assert.True(t, resp.IsHoliday)
	assert.Equal(t, "1.5", resp.OvertimeHours.String())
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.False(t, resp.IsLate)
}

func TestAmend_RejectsNegativeOvertime(t *testing.T) {
	svc := newTestService(newFakeAttendanceRepo(), newFakeScheduleRepo(), mondayAt(8, 0))

	negative := decimal.NewFromFloat(-1)
	_, err := svc.Amend(context.Background(), attendance.AmendRequest{ID: "att-1", OvertimeHours: &negative})
	assert.Error(t, err)
}
