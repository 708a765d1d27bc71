package schedule

import (
	"context"
	"testing"

	"github.com/bizpanel/panel-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestGet_FallsBackToDefaultWeek(t *testing.T) {
	svc := NewService(newFakeScheduleRepo(), nil)

	resp, err := svc.Get(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, 49.0, resp.WeeklyHours)
	assert.Equal(t, 6, resp.WorkingDays)
	assert.False(t, resp.Week["sunday"].Enabled)
}

func TestReplace_StoresWholeWeek(t *testing.T) {
	repo := newFakeScheduleRepo()
	svc := NewService(repo, nil)

	week := schedule.WeeklySchedule{
		"monday":  {Enabled: true, Start: "09:00", End: "18:00", Break: "12:00-13:00"},
		"tuesday": {Enabled: true, Start: "09:00", End: "18:00", Break: "12:00-13:00"},
	}

	resp, err := svc.Replace(context.Background(), schedule.ReplaceScheduleRequest{
		EmployeeID: "emp-1",
		Week:       week,
	})
	require.NoError(t, err)

	assert.Equal(t, 18.0, resp.WeeklyHours)
	assert.Equal(t, 2, resp.WorkingDays)

	// Get now returns the stored week, not the default.
	got, err := svc.Get(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 18.0, got.WeeklyHours)
}

func TestReplace_RejectsUnknownDayName(t *testing.T) {
	svc := NewService(newFakeScheduleRepo(), nil)

	_, err := svc.Replace(context.Background(), schedule.ReplaceScheduleRequest{
		EmployeeID: "emp-1",
		Week: schedule.WeeklySchedule{
			"funday": {Enabled: true, Start: "08:00", End: "17:00"},
		},
	})
	assert.Error(t, err)
}

func TestReplace_RejectsMalformedClockTime(t *testing.T) {
	svc := NewService(newFakeScheduleRepo(), nil)

	_, err := svc.Replace(context.Background(), schedule.ReplaceScheduleRequest{
		EmployeeID: "emp-1",
		Week: schedule.WeeklySchedule{
			"monday": {Enabled: true, Start: "8am", End: "17:00"},
		},
	})
	assert.Error(t, err)
}

func TestReplace_RequiresWeek(t *testing.T) {
	svc := NewService(newFakeScheduleRepo(), nil)

	_, err := svc.Replace(context.Background(), schedule.ReplaceScheduleRequest{EmployeeID: "emp-1"})
	assert.Error(t, err)
}
