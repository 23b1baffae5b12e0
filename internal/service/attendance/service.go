package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/talenthub-hr/hrms-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	repo attendance.RecordRepository

	// now is injectable for tests; defaults to time.Now
	now func() time.Time
}

func NewAttendanceService(repo attendance.RecordRepository) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock overrides the service clock.
func (a *AttendanceServiceImpl) WithClock(now func() time.Time) *AttendanceServiceImpl {
	a.now = now
	return a
}

// CheckIn implements attendance.Service. The transition NoRecord ->
// CheckedIn; a record may already exist for today without a check-in
// (HR-created), in which case it is claimed rather than duplicated.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	now := a.now()
	today := attendance.StartOfDay(now)

	rec, err := a.repo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	if rec != nil && rec.CheckIn != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	if rec == nil {
		created, err := a.repo.Create(ctx, attendance.Record{
			EmployeeID: employeeID,
			Date:       today,
			CheckIn:    &now,
			Status:     attendance.StatusPresent,
		})
		// A concurrent check-in can slip past the lookup; the loser's
		// duplicate insert means someone already checked in.
		if errors.Is(err, attendance.ErrRecordExists) {
			return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
		}
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
		}
		return attendance.ToResponse(created), nil
	}

	rec.CheckIn = &now
	rec.Status = attendance.StatusPresent
	if err := a.repo.Update(ctx, *rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return attendance.ToResponse(*rec), nil
}

// CheckOut implements attendance.Service. Requires an open check-in for
// today; fills checkOut and derives work/extra hours.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	now := a.now()
	today := attendance.StartOfDay(now)

	rec, err := a.repo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	if rec == nil || rec.CheckIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	rec.CheckOut = &now
	rec.WorkHours, rec.ExtraHours = attendance.ComputeWorkHours(*rec.CheckIn, now)

	if err := a.repo.Update(ctx, *rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return attendance.ToResponse(*rec), nil
}

// Today implements attendance.Service.
func (a *AttendanceServiceImpl) Today(ctx context.Context, employeeID string) (attendance.TodayResponse, error) {
	today := attendance.StartOfDay(a.now())

	rec, err := a.repo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if rec == nil {
		return attendance.TodayResponse{}, nil
	}

	resp := attendance.ToResponse(*rec)
	return attendance.TodayResponse{
		CheckedIn:    rec.CheckIn != nil,
		CheckedOut:   rec.CheckOut != nil,
		CheckInTime:  resp.CheckIn,
		CheckOutTime: resp.CheckOut,
		WorkHours:    rec.WorkHours,
	}, nil
}

// List implements attendance.Service. Date precedence: a single date,
// else an explicit range, else the current month.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	repoFilter := attendance.Filter{EmployeeID: filter.EmployeeID}

	switch {
	case filter.Date != "":
		day, err := time.Parse("2006-01-02", filter.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date filter: %w", err)
		}
		repoFilter.From = day
		repoFilter.To = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	case filter.StartDate != "" && filter.EndDate != "":
		from, err := time.Parse("2006-01-02", filter.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date filter: %w", err)
		}
		to, err := time.Parse("2006-01-02", filter.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date filter: %w", err)
		}
		repoFilter.From = from
		repoFilter.To = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	default:
		repoFilter.From, repoFilter.To = currentMonthBounds(a.now())
	}

	records, err := a.repo.List(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}

// MonthlySummary implements attendance.Service.
func (a *AttendanceServiceImpl) MonthlySummary(ctx context.Context, employeeID string) (attendance.MonthlySummaryResponse, error) {
	from, to := currentMonthBounds(a.now())

	records, err := a.repo.List(ctx, attendance.Filter{EmployeeID: employeeID, From: from, To: to})
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	var summary attendance.MonthlySummaryResponse
	summary.TotalWorkDays = len(records)
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusOnLeave:
			summary.LeavesCount++
		}
	}
	summary.AbsentDays = summary.TotalWorkDays - summary.PresentDays - summary.LeavesCount
	return summary, nil
}

// CreateForDate implements attendance.Service. HR direct entry bypasses
// the state machine; any status/time combination is accepted. When both
// times are supplied and hours are not, the check-out formula is
// reapplied.
func (a *AttendanceServiceImpl) CreateForDate(ctx context.Context, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	existing, err := a.repo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up attendance: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrRecordExists
	}

	rec := attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.StatusPresent,
		Notes:      req.Notes,
	}
	if req.Status != "" {
		rec.Status = attendance.Status(req.Status)
	}

	rec.CheckIn = clockTimeOnDate(req.CheckIn, date)
	rec.CheckOut = clockTimeOnDate(req.CheckOut, date)

	switch {
	case req.WorkHours != nil:
		rec.WorkHours = *req.WorkHours
		if req.ExtraHours != nil {
			rec.ExtraHours = *req.ExtraHours
		}
	case rec.CheckIn != nil && rec.CheckOut != nil:
		rec.WorkHours, rec.ExtraHours = attendance.ComputeWorkHours(*rec.CheckIn, *rec.CheckOut)
	}

	created, err := a.repo.Create(ctx, rec)
	if errors.Is(err, attendance.ErrRecordExists) {
		return attendance.RecordResponse{}, attendance.ErrRecordExists
	}
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return attendance.ToResponse(created), nil
}

// UpdateForDate implements attendance.Service.
func (a *AttendanceServiceImpl) UpdateForDate(ctx context.Context, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := a.repo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if req.Status != nil {
		rec.Status = attendance.Status(*req.Status)
	}
	if req.Notes != nil {
		rec.Notes = *req.Notes
	}
	if req.CheckIn != nil {
		rec.CheckIn = clockTimeOnDate(*req.CheckIn, rec.Date)
	}
	if req.CheckOut != nil {
		rec.CheckOut = clockTimeOnDate(*req.CheckOut, rec.Date)
	}

	switch {
	case req.WorkHours != nil:
		rec.WorkHours = *req.WorkHours
		if req.ExtraHours != nil {
			rec.ExtraHours = *req.ExtraHours
		}
	case (req.CheckIn != nil || req.CheckOut != nil) && rec.CheckIn != nil && rec.CheckOut != nil:
		rec.WorkHours, rec.ExtraHours = attendance.ComputeWorkHours(*rec.CheckIn, *rec.CheckOut)
	}

	if err := a.repo.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return attendance.ToResponse(rec), nil
}

// clockTimeOnDate projects an "HH:MM" wall-clock string onto the given
// date; empty input yields nil.
func clockTimeOnDate(clock string, date time.Time) *time.Time {
	if clock == "" {
		return nil
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return nil
	}
	at := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
	return &at
}

func currentMonthBounds(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return from, to
}
