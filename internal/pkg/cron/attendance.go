package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talenthub-hr/hrms-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceRepo attendance.RecordRepository

	now func() time.Time
}

func NewAttendanceJobs(attendanceRepo attendance.RecordRepository) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// WithClock overrides the job clock.
func (j *AttendanceJobs) WithClock(now func() time.Time) *AttendanceJobs {
	j.now = now
	return j
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills an Absent record for every active
// employee who never checked in yesterday. Runs only in the first hour
// after midnight; the leave approval fan-out has already written its
// On Leave rows, so those days are untouched.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	now := j.now()
	if now.Hour() != 0 {
		return nil
	}

	yesterday := attendance.StartOfDay(now.AddDate(0, 0, -1))

	ids, err := j.attendanceRepo.ListEmployeesWithoutRecord(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to list employees without attendance: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	marked := 0
	for _, employeeID := range ids {
		if err := j.attendanceRepo.Upsert(ctx, employeeID, yesterday, attendance.StatusAbsent, "Auto-marked absent"); err != nil {
			slog.Error("Cron: failed to mark employee absent", "employee_id", employeeID, "error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: marked absent employees", "date", yesterday.Format("2006-01-02"), "count", marked)
	return nil
}
