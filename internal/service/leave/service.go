package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/database"
	"github.com/talenthub-hr/hrms-backend-go/internal/repository/postgresql"
)

const (
	yearlyPaidTimeOff = 24
	yearlySickLeave   = 7
)

type LeaveServiceImpl struct {
	db             *database.DB
	repo           leave.RequestRepository
	attendanceRepo attendance.RecordRepository

	// inTx wraps the approval fan-out; overridable in tests
	inTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewLeaveService(db *database.DB, repo leave.RequestRepository, attendanceRepo attendance.RecordRepository) *LeaveServiceImpl {
	s := &LeaveServiceImpl{
		db:             db,
		repo:           repo,
		attendanceRepo: attendanceRepo,
	}
	s.inTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			return fn(context.WithValue(ctx, "tx", tx))
		})
	}
	return s
}

// WithTxRunner overrides the transaction wrapper.
func (l *LeaveServiceImpl) WithTxRunner(inTx func(ctx context.Context, fn func(ctx context.Context) error) error) *LeaveServiceImpl {
	l.inTx = inTx
	return l
}

// Apply implements leave.Service.
func (l *LeaveServiceImpl) Apply(ctx context.Context, employeeID string, req leave.CreateRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := l.repo.Create(ctx, leave.Request{
		EmployeeID:  employeeID,
		TimeOffType: leave.TimeOffType(req.TimeOffType),
		StartDate:   start,
		EndDate:     end,
		Allocation:  leave.AllocationDays(start, end),
		Reason:      req.Reason,
		Attachment:  req.Attachment,
		Status:      leave.StatusPending,
	})
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return leave.ToResponse(created), nil
}

// Get implements leave.Service.
func (l *LeaveServiceImpl) Get(ctx context.Context, id, requesterEmployeeID string, isHR bool) (leave.RequestResponse, error) {
	req, err := l.repo.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if !isHR && req.EmployeeID != requesterEmployeeID {
		return leave.RequestResponse{}, leave.ErrNotRequestOwner
	}
	return leave.ToResponse(req), nil
}

// List implements leave.Service.
func (l *LeaveServiceImpl) List(ctx context.Context, filter leave.Filter) ([]leave.RequestResponse, error) {
	requests, err := l.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}
	return responses, nil
}

// Review implements leave.Service. Approval upserts an "On Leave"
// attendance record for every day of the inclusive range; the review
// stamp and fan-out commit atomically.
func (l *LeaveServiceImpl) Review(ctx context.Context, reviewerUserID string, req leave.ReviewRequest) (leave.RequestResponse, error) {
	decision := leave.RequestStatus(req.Status)
	if decision != leave.StatusApproved && decision != leave.StatusRejected {
		return leave.RequestResponse{}, leave.ErrInvalidDecision
	}

	request, err := l.repo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyReviewed
	}

	now := time.Now()
	request.Status = decision
	request.ReviewedBy = &reviewerUserID
	request.ReviewedAt = &now
	if req.ReviewComments != "" {
		request.ReviewComments = &req.ReviewComments
	}

	err = l.inTx(ctx, func(txCtx context.Context) error {
		if err := l.repo.UpdateReview(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		if decision != leave.StatusApproved {
			return nil
		}

		notes := fmt.Sprintf("Leave: %s", request.TimeOffType)
		for _, day := range leave.DateRange(request.StartDate, request.EndDate) {
			if err := l.attendanceRepo.Upsert(txCtx, request.EmployeeID, day, attendance.StatusOnLeave, notes); err != nil {
				return fmt.Errorf("failed to mark attendance for %s: %w", day.Format("2006-01-02"), err)
			}
		}
		return nil
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.ToResponse(request), nil
}

// Delete implements leave.Service.
func (l *LeaveServiceImpl) Delete(ctx context.Context, id, requesterEmployeeID string, isHR bool) error {
	request, err := l.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isHR && request.EmployeeID != requesterEmployeeID {
		return leave.ErrNotRequestOwner
	}
	if request.Status != leave.StatusPending {
		return leave.ErrNotPending
	}

	if err := l.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	return nil
}

// Summary implements leave.Service. Balances run against fixed yearly
// entitlements; only approved requests consume them. Unpaid leave has
// no entitlement, so its available balance never moves.
func (l *LeaveServiceImpl) Summary(ctx context.Context, employeeID string) (leave.SummaryResponse, error) {
	requests, err := l.repo.List(ctx, leave.Filter{EmployeeID: employeeID})
	if err != nil {
		return leave.SummaryResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	summary := leave.SummaryResponse{
		PaidTimeOff: leave.TypeSummary{Total: yearlyPaidTimeOff, Available: yearlyPaidTimeOff},
		SickLeave:   leave.TypeSummary{Total: yearlySickLeave, Available: yearlySickLeave},
	}

	for _, req := range requests {
		if req.Status != leave.StatusApproved {
			continue
		}
		switch req.TimeOffType {
		case leave.TimeOffPaid:
			summary.PaidTimeOff.Used += req.Allocation
			summary.PaidTimeOff.Available = summary.PaidTimeOff.Total - summary.PaidTimeOff.Used
		case leave.TimeOffSick:
			summary.SickLeave.Used += req.Allocation
			summary.SickLeave.Available = summary.SickLeave.Total - summary.SickLeave.Used
		case leave.TimeOffUnpaid:
			summary.UnpaidLeaves.Used += req.Allocation
		}
	}
	return summary, nil
}
