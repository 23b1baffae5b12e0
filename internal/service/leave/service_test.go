package leave

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/leave"
)

type fakeRequestRepo struct {
	requests map[string]*leave.Request
	nextID   int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*leave.Request)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	f.nextID++
	req.ID = fmt.Sprintf("leave-%d", f.nextID)
	req.CreatedAt = time.Now()
	f.requests[req.ID] = &req
	return req, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return *req, nil
}

func (f *fakeRequestRepo) List(ctx context.Context, filter leave.Filter) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if filter.EmployeeID != "" && req.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(req.Status) != filter.Status {
			continue
		}
		if filter.TimeOffType != "" && string(req.TimeOffType) != filter.TimeOffType {
			continue
		}
		out = append(out, *req)
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateReview(ctx context.Context, req leave.Request) error {
	existing, ok := f.requests[req.ID]
	if !ok {
		return leave.ErrRequestNotFound
	}
	if existing.Status != leave.StatusPending {
		return leave.ErrAlreadyReviewed
	}
	f.requests[req.ID] = &req
	return nil
}

func (f *fakeRequestRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return leave.ErrRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

type upsertCall struct {
	employeeID string
	date       time.Time
	status     attendance.Status
}

// fakeAttendanceRepo records Upsert calls from the approval fan-out.
type fakeAttendanceRepo struct {
	upserts   []upsertCall
	upsertErr error
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.Record) error {
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, employeeID string, date time.Time, status attendance.Status, notes string) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, upsertCall{employeeID: employeeID, date: date, status: status})
	return nil
}

func (f *fakeAttendanceRepo) ListEmployeesWithoutRecord(ctx context.Context, date time.Time) ([]string, error) {
	return nil, nil
}

func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo leave.RequestRepository, attendanceRepo attendance.RecordRepository) *LeaveServiceImpl {
	return NewLeaveService(nil, repo, attendanceRepo).WithTxRunner(passthroughTx)
}

func TestApplyComputesAllocation(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo, &fakeAttendanceRepo{})

	resp, err := svc.Apply(context.Background(), "emp-1", leave.CreateRequestRequest{
		TimeOffType: string(leave.TimeOffPaid),
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-12",
		Reason:      "family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Allocation)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
}

func TestApplyRejectsInvalidType(t *testing.T) {
	svc := newTestService(newFakeRequestRepo(), &fakeAttendanceRepo{})

	_, err := svc.Apply(context.Background(), "emp-1", leave.CreateRequestRequest{
		TimeOffType: "Vacation",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-12",
	})
	assert.Error(t, err)
}

func TestApplyRejectsReversedRange(t *testing.T) {
	svc := newTestService(newFakeRequestRepo(), &fakeAttendanceRepo{})

	_, err := svc.Apply(context.Background(), "emp-1", leave.CreateRequestRequest{
		TimeOffType: string(leave.TimeOffSick),
		StartDate:   "2026-03-12",
		EndDate:     "2026-03-10",
	})
	assert.Error(t, err)
}

func TestReviewApprovalFansOutAttendance(t *testing.T) {
	repo := newFakeRequestRepo()
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(repo, attRepo)

	ctx := context.Background()
	created, err := svc.Apply(ctx, "emp-1", leave.CreateRequestRequest{
		TimeOffType: string(leave.TimeOffPaid),
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-12",
	})
	require.NoError(t, err)

	resp, err := svc.Review(ctx, "hr-user", leave.ReviewRequest{
		ID:     created.ID,
		Status: string(leave.StatusApproved),
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)

	require.Len(t, attRepo.upserts, 3)
	for i, call := range attRepo.upserts {
		assert.Equal(t, "emp-1", call.employeeID)
		assert.Equal(t, attendance.StatusOnLeave, call.status)
		assert.Equal(t, time.Date(2026, 3, 10+i, 0, 0, 0, 0, time.UTC), call.date)
	}
}

func TestReviewApprovalFanOutFailureAborts(t *testing.T) {
	repo := newFakeRequestRepo()
	attRepo := &fakeAttendanceRepo{upsertErr: errors.New("disk full")}
	svc := newTestService(repo, attRepo)

	// Track what the transaction wrapper observes; a fan-out failure
	// must surface there so the real runner rolls the approval back.
	var txErr error
	svc.WithTxRunner(func(ctx context.Context, fn func(ctx context.Context) error) error {
		txErr = fn(ctx)
		return txErr
	})

	ctx := context.Background()
	created, err := svc.Apply(ctx, "emp-1", leave.CreateRequestRequest{
		TimeOffType: string(leave.TimeOffPaid),
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-12",
	})
	require.NoError(t, err)

	_, err = svc.Review(ctx, "hr-user", leave.ReviewRequest{
		ID:     created.ID,
		Status: string(leave.StatusApproved),
	})
	assert.ErrorIs(t, err, attRepo.upsertErr)
	assert.ErrorIs(t, txErr, attRepo.upsertErr)
	assert.Empty(t, attRepo.upserts)
}

func TestReviewRejectionSkipsFanOut(t *testing.T) {
	repo := newFakeRequestRepo()
	attRepo := &fakeAttendanceRepo{}
	svc := newTestService(repo, attRepo)

	ctx := context.Background()
	created, err := svc.Apply(ctx, "emp-1", leave.CreateRequestRequest{
		TimeOffType: string(leave.TimeOffSick),
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-11",
	})
	require.NoError(t, err)

	comments := "insufficient notice"
	resp, err := svc.Review(ctx, "hr-user", leave.ReviewRequest{
		ID:             created.ID,
		Status:         string(leave.StatusRejected),
		ReviewComments: comments,
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusRejected), resp.Status)
	require.NotNil(t, resp.ReviewComments)
	assert.Equal(t, comments, *resp.ReviewComments)
	assert.Empty(t, attRepo.upserts)
}

func TestReviewInvalidDecisionRejected(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo, &fakeAttendanceRepo{})

	ctx := context.Background()
	created, err := svc.Apply(ctx, "emp-1", leave.CreateRequestRequest{
		TimeOffType: string(leave.TimeOffPaid),
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-10",
	})
	require.NoError(t, err)

	_, err = svc.Review(ctx, "hr-user", leave.ReviewRequest{ID: created.ID, Status: "Pending"})
	assert.ErrorIs(t, err, leave.ErrInvalidDecision)

	_, err = svc.Review(ctx, "hr-user", leave.ReviewRequest{ID: created.ID, Status: "Maybe"})
	assert.ErrorIs(t, err, leave.ErrInvalidDecision)
}

func TestReviewTwiceRejected(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo, &fakeAttendanceRepo{})

	ctx := context.Background()
	created, err := svc.Apply(ctx, "emp-1", leave.CreateRequestRequest{
		TimeOffType: string(leave.TimeOffPaid),
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-10",
	})
	require.NoError(t, err)

	_, err = svc.Review(ctx, "hr-user", leave.ReviewRequest{ID: created.ID, Status: string(leave.StatusApproved)})
	require.NoError(t, err)

	_, err = svc.Review(ctx, "hr-user", leave.ReviewRequest{ID: created.ID, Status: string(leave.StatusRejected)})
	assert.ErrorIs(t, err, leave.ErrAlreadyReviewed)
}

func TestDeleteRules(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo, &fakeAttendanceRepo{})

	ctx := context.Background()
	created, err := svc.Apply(ctx, "emp-1", leave.CreateRequestRequest{
		TimeOffType: string(leave.TimeOffUnpaid),
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-10",
	})
	require.NoError(t, err)

	// A different employee may not delete it.
	err = svc.Delete(ctx, created.ID, "emp-2", false)
	assert.ErrorIs(t, err, leave.ErrNotRequestOwner)

	// The owner may.
	err = svc.Delete(ctx, created.ID, "emp-1", false)
	assert.NoError(t, err)

	// Approved requests are immutable even for HR.
	approved, err := svc.Apply(ctx, "emp-1", leave.CreateRequestRequest{
		TimeOffType: string(leave.TimeOffPaid),
		StartDate:   "2026-03-11",
		EndDate:     "2026-03-11",
	})
	require.NoError(t, err)
	_, err = svc.Review(ctx, "hr-user", leave.ReviewRequest{ID: approved.ID, Status: string(leave.StatusApproved)})
	require.NoError(t, err)

	err = svc.Delete(ctx, approved.ID, "", true)
	assert.ErrorIs(t, err, leave.ErrNotPending)
}

func TestSummaryBalances(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := newTestService(repo, &fakeAttendanceRepo{})

	ctx := context.Background()

	apply := func(timeOff leave.TimeOffType, start, end string) string {
		resp, err := svc.Apply(ctx, "emp-1", leave.CreateRequestRequest{
			TimeOffType: string(timeOff),
			StartDate:   start,
			EndDate:     end,
		})
		require.NoError(t, err)
		return resp.ID
	}
	approve := func(id string) {
		_, err := svc.Review(ctx, "hr-user", leave.ReviewRequest{ID: id, Status: string(leave.StatusApproved)})
		require.NoError(t, err)
	}

	approve(apply(leave.TimeOffPaid, "2026-03-10", "2026-03-12")) // 3 days
	approve(apply(leave.TimeOffSick, "2026-04-01", "2026-04-02")) // 2 days
	approve(apply(leave.TimeOffUnpaid, "2026-05-04", "2026-05-04"))

	// Pending requests never consume the balance.
	apply(leave.TimeOffPaid, "2026-06-01", "2026-06-05")

	summary, err := svc.Summary(ctx, "emp-1")
	require.NoError(t, err)

	assert.Equal(t, leave.TypeSummary{Total: 24, Used: 3, Available: 21}, summary.PaidTimeOff)
	assert.Equal(t, leave.TypeSummary{Total: 7, Used: 2, Available: 5}, summary.SickLeave)
	assert.Equal(t, leave.TypeSummary{Total: 0, Used: 1, Available: 0}, summary.UnpaidLeaves)
}
