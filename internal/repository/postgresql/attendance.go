package postgresql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepositoryImpl{db: db}
}

// itoa numbers positional SQL placeholders built dynamically.
func itoa(n int) string {
	return strconv.Itoa(n)
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in, a.check_out,
	a.work_hours, a.extra_hours, a.status, a.notes,
	a.created_at, a.updated_at,
	e.first_name || ' ' || e.last_name, e.login_id`

const attendanceJoin = ` FROM attendance_records a JOIN employees e ON e.id = a.employee_id`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Date,
		&rec.CheckIn,
		&rec.CheckOut,
		&rec.WorkHours,
		&rec.ExtraHours,
		&rec.Status,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.EmployeeName,
		&rec.EmployeeLogin,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	if err != nil {
		return attendance.Record{}, err
	}
	return rec, nil
}

// Create implements attendance.RecordRepository. The unique index on
// (employee_id, date) rejects the loser of two concurrent check-ins;
// that violation surfaces as ErrRecordExists.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO attendance_records (
				id, employee_id, date, check_in, check_out,
				work_hours, extra_hours, status, notes
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		)
		SELECT ` + attendanceColumns + `
		FROM inserted a JOIN employees e ON e.id = a.employee_id
	`

	created, err := scanAttendance(q.QueryRow(ctx, query,
		uuid.NewString(),
		rec.EmployeeID,
		rec.Date,
		rec.CheckIn,
		rec.CheckOut,
		rec.WorkHours,
		rec.ExtraHours,
		rec.Status,
		rec.Notes,
	))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return attendance.Record{}, attendance.ErrRecordExists
	}
	return created, err
}

// GetByID implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoin + ` WHERE a.id = $1`
	return scanAttendance(q.QueryRow(ctx, query, id))
}

// GetByEmployeeAndDate implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoin + ` WHERE a.employee_id = $1 AND a.date = $2`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if errors.Is(err, attendance.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_in = $1, check_out = $2, work_hours = $3, extra_hours = $4,
			status = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		rec.CheckIn,
		rec.CheckOut,
		rec.WorkHours,
		rec.ExtraHours,
		rec.Status,
		rec.Notes,
		rec.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// List implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoin + ` WHERE 1=1`
	args := []interface{}{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += ` AND a.employee_id = $` + itoa(len(args))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		query += ` AND a.date >= $` + itoa(len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		query += ` AND a.date <= $` + itoa(len(args))
	}
	query += ` ORDER BY a.date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Upsert implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, employeeID string, date time.Time, status attendance.Status, notes string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, date, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, uuid.NewString(), employeeID, date, status, notes)
	return err
}

// ListEmployeesWithoutRecord implements attendance.RecordRepository.
func (r *attendanceRepositoryImpl) ListEmployeesWithoutRecord(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id
		FROM employees e
		WHERE e.is_active = true
		  AND NOT EXISTS (
			SELECT 1 FROM attendance_records a
			WHERE a.employee_id = e.id AND a.date = $1
		  )
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
