package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.time_off_type, l.start_date, l.end_date, l.allocation,
	l.reason, l.attachment, l.status,
	l.reviewed_by, l.review_comments, l.reviewed_at,
	l.created_at, l.updated_at,
	e.first_name || ' ' || e.last_name, e.login_id, u.email`

const leaveJoin = `
	FROM leave_requests l
	JOIN employees e ON e.id = l.employee_id
	LEFT JOIN users u ON u.id = l.reviewed_by`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&req.TimeOffType,
		&req.StartDate,
		&req.EndDate,
		&req.Allocation,
		&req.Reason,
		&req.Attachment,
		&req.Status,
		&req.ReviewedBy,
		&req.ReviewComments,
		&req.ReviewedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.EmployeeName,
		&req.EmployeeLogin,
		&req.ReviewerEmail,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	if err != nil {
		return leave.Request{}, err
	}
	return req, nil
}

// Create implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO leave_requests (
				id, employee_id, time_off_type, start_date, end_date,
				allocation, reason, attachment, status
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		)
		SELECT ` + leaveColumns + `
		FROM inserted l
		JOIN employees e ON e.id = l.employee_id
		LEFT JOIN users u ON u.id = l.reviewed_by
	`

	return scanLeaveRequest(q.QueryRow(ctx, query,
		uuid.NewString(),
		req.EmployeeID,
		req.TimeOffType,
		req.StartDate,
		req.EndDate,
		req.Allocation,
		req.Reason,
		req.Attachment,
		req.Status,
	))
}

// GetByID implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + leaveJoin + ` WHERE l.id = $1`
	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

// List implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + leaveJoin + ` WHERE 1=1`
	args := []interface{}{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += ` AND l.employee_id = $` + itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` AND l.status = $` + itoa(len(args))
	}
	if filter.TimeOffType != "" {
		args = append(args, filter.TimeOffType)
		query += ` AND l.time_off_type = $` + itoa(len(args))
	}
	query += ` ORDER BY l.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// UpdateReview implements leave.RequestRepository. Only a pending row
// accepts the review stamp, so a concurrent second review finds zero
// rows and fails.
func (r *leaveRequestRepositoryImpl) UpdateReview(ctx context.Context, req leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, reviewed_by = $2, review_comments = $3, reviewed_at = $4,
			updated_at = NOW()
		WHERE id = $5 AND status = 'Pending'
	`

	tag, err := q.Exec(ctx, query,
		req.Status,
		req.ReviewedBy,
		req.ReviewComments,
		req.ReviewedAt,
		req.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrAlreadyReviewed
	}
	return nil
}

// Delete implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}
