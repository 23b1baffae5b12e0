package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/attendance"
)

type fakeRecordRepo struct {
	records map[string]*attendance.Record
	nextID  int

	// staleLookups makes GetByEmployeeAndDate report no record that many
	// times, as a concurrent writer would between lookup and insert
	staleLookups int
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]*attendance.Record)}
}

func (f *fakeRecordRepo) key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeRecordRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	if _, exists := f.records[f.key(rec.EmployeeID, rec.Date)]; exists {
		return attendance.Record{}, attendance.ErrRecordExists
	}
	f.nextID++
	rec.ID = fmt.Sprintf("rec-%d", f.nextID)
	f.records[f.key(rec.EmployeeID, rec.Date)] = &rec
	return rec, nil
}

func (f *fakeRecordRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return *rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	if f.staleLookups > 0 {
		f.staleLookups--
		return nil, nil
	}
	rec, ok := f.records[f.key(employeeID, date)]
	if !ok {
		return nil, nil
	}
	found := *rec
	return &found, nil
}

func (f *fakeRecordRepo) Update(ctx context.Context, rec attendance.Record) error {
	for k, existing := range f.records {
		if existing.ID == rec.ID {
			f.records[k] = &rec
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (f *fakeRecordRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		if !filter.From.IsZero() && rec.Date.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && rec.Date.After(filter.To) {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeRecordRepo) Upsert(ctx context.Context, employeeID string, date time.Time, status attendance.Status, notes string) error {
	k := f.key(employeeID, date)
	if rec, ok := f.records[k]; ok {
		rec.Status = status
		rec.Notes = notes
		return nil
	}
	f.nextID++
	f.records[k] = &attendance.Record{
		ID:         fmt.Sprintf("rec-%d", f.nextID),
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		Notes:      notes,
	}
	return nil
}

func (f *fakeRecordRepo) ListEmployeesWithoutRecord(ctx context.Context, date time.Time) ([]string, error) {
	return nil, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCheckInCreatesTodaysRecord(t *testing.T) {
	repo := newFakeRecordRepo()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewAttendanceService(repo).WithClock(fixedClock(now))

	resp, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	require.NotNil(t, resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
}

func TestCheckInTwiceRejected(t *testing.T) {
	repo := newFakeRecordRepo()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewAttendanceService(repo).WithClock(fixedClock(now))

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInRaceLoserRejected(t *testing.T) {
	repo := newFakeRecordRepo()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewAttendanceService(repo).WithClock(fixedClock(now))

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	// A concurrent winner commits between this check-in's lookup and
	// insert; the duplicate-key rejection must read as already checked in.
	repo.staleLookups = 1
	_, err = svc.CheckIn(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	rec, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", attendance.StartOfDay(now))
	require.NoError(t, err)
	require.NotNil(t, rec)
}

func TestCheckOutWithoutCheckInRejected(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewAttendanceService(repo).WithClock(fixedClock(time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)))

	_, err := svc.CheckOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutComputesHours(t *testing.T) {
	repo := newFakeRecordRepo()
	checkIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewAttendanceService(repo).WithClock(fixedClock(checkIn))

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.WithClock(fixedClock(checkIn.Add(8*time.Hour + 30*time.Minute)))
	resp, err := svc.CheckOut(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.InDelta(t, 8.5, resp.WorkHours, 1e-9)
	assert.InDelta(t, 0.5, resp.ExtraHours, 1e-9)
}

func TestCheckOutTwiceRejected(t *testing.T) {
	repo := newFakeRecordRepo()
	checkIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewAttendanceService(repo).WithClock(fixedClock(checkIn))

	_, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	svc.WithClock(fixedClock(checkIn.Add(8 * time.Hour)))
	_, err = svc.CheckOut(context.Background(), "emp-1")
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckInClaimsHRCreatedRecord(t *testing.T) {
	repo := newFakeRecordRepo()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewAttendanceService(repo).WithClock(fixedClock(now))

	// HR pre-created today's row without a check-in time.
	_, err := repo.Create(context.Background(), attendance.Record{
		EmployeeID: "emp-1",
		Date:       attendance.StartOfDay(now),
		Status:     attendance.StatusHalfDay,
	})
	require.NoError(t, err)

	resp, err := svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
	assert.Len(t, repo.records, 1)
}

func TestTodayReflectsState(t *testing.T) {
	repo := newFakeRecordRepo()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewAttendanceService(repo).WithClock(fixedClock(now))

	resp, err := svc.Today(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.False(t, resp.CheckedIn)
	assert.False(t, resp.CheckedOut)

	_, err = svc.CheckIn(context.Background(), "emp-1")
	require.NoError(t, err)

	resp, err = svc.Today(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.True(t, resp.CheckedIn)
	assert.False(t, resp.CheckedOut)
}

func TestMonthlySummaryCounts(t *testing.T) {
	repo := newFakeRecordRepo()
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	svc := NewAttendanceService(repo).WithClock(fixedClock(now))

	ctx := context.Background()
	seed := []struct {
		day    int
		status attendance.Status
	}{
		{2, attendance.StatusPresent},
		{3, attendance.StatusPresent},
		{4, attendance.StatusOnLeave},
		{5, attendance.StatusAbsent},
		{6, attendance.StatusPresent},
	}
	for _, s := range seed {
		_, err := repo.Create(ctx, attendance.Record{
			EmployeeID: "emp-1",
			Date:       time.Date(2026, 3, s.day, 0, 0, 0, 0, time.UTC),
			Status:     s.status,
		})
		require.NoError(t, err)
	}
	// Outside the current month, must not count.
	_, err := repo.Create(ctx, attendance.Record{
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	summary, err := svc.MonthlySummary(ctx, "emp-1")
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalWorkDays)
	assert.Equal(t, 3, summary.PresentDays)
	assert.Equal(t, 1, summary.LeavesCount)
	assert.Equal(t, 1, summary.AbsentDays)
}

func TestCreateForDateRejectsDuplicate(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewAttendanceService(repo)

	ctx := context.Background()
	req := attendance.CreateRecordRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-10",
		Status:     string(attendance.StatusPresent),
	}

	_, err := svc.CreateForDate(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateForDate(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrRecordExists)

	// Same outcome when the duplicate only shows up at insert time.
	repo.staleLookups = 1
	_, err = svc.CreateForDate(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrRecordExists)
}

func TestCreateForDateDerivesHoursFromTimes(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewAttendanceService(repo)

	resp, err := svc.CreateForDate(context.Background(), attendance.CreateRecordRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-10",
		CheckIn:    "09:00",
		CheckOut:   "18:30",
	})
	require.NoError(t, err)

	assert.InDelta(t, 9.5, resp.WorkHours, 1e-9)
	assert.InDelta(t, 1.5, resp.ExtraHours, 1e-9)
}

func TestUpdateForDateRecomputesHours(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewAttendanceService(repo)

	ctx := context.Background()
	created, err := svc.CreateForDate(ctx, attendance.CreateRecordRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-10",
		CheckIn:    "09:00",
		CheckOut:   "17:00",
	})
	require.NoError(t, err)
	assert.InDelta(t, 8, created.WorkHours, 1e-9)

	newOut := "19:00"
	updated, err := svc.UpdateForDate(ctx, attendance.UpdateRecordRequest{
		ID:       created.ID,
		CheckOut: &newOut,
	})
	require.NoError(t, err)
	assert.InDelta(t, 10, updated.WorkHours, 1e-9)
	assert.InDelta(t, 2, updated.ExtraHours, 1e-9)
}
