package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/qrworks/qrworks-backend-go/internal/domain/leave"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, user_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, start_date, end_date, reason, status,
				  approved_by, approved_at, rejection_reason, created_at, updated_at
	`

	var created leave.Request
	err := q.QueryRow(ctx, query,
		request.ID,
		request.UserID,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.Status,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.StartDate,
		&created.EndDate,
		&created.Reason,
		&created.Status,
		&created.ApprovedBy,
		&created.ApprovedAt,
		&created.RejectionReason,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return leave.Request{}, err
	}

	return created, nil
}

// GetByID implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, reason, status,
			   approved_by, approved_at, rejection_reason, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	var found leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.UserID,
		&found.StartDate,
		&found.EndDate,
		&found.Reason,
		&found.Status,
		&found.ApprovedBy,
		&found.ApprovedAt,
		&found.RejectionReason,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, err
	}

	return found, nil
}

// ListByUser implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, reason, status,
			   approved_by, approved_at, rejection_reason, created_at, updated_at
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows, false)
}

// List implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, status *leave.RequestStatus) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.user_id, lr.start_date, lr.end_date, lr.reason, lr.status,
			   lr.approved_by, lr.approved_at, lr.rejection_reason, lr.created_at, lr.updated_at,
			   u.full_name
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE ($1::text IS NULL OR lr.status = $1)
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaveRequests(rows, true)
}

// Update implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query,
		request.Status,
		request.ApprovedBy,
		request.ApprovedAt,
		request.RejectionReason,
		request.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}

func scanLeaveRequests(rows pgx.Rows, withUserName bool) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		dest := []interface{}{
			&req.ID,
			&req.UserID,
			&req.StartDate,
			&req.EndDate,
			&req.Reason,
			&req.Status,
			&req.ApprovedBy,
			&req.ApprovedAt,
			&req.RejectionReason,
			&req.CreatedAt,
			&req.UpdatedAt,
		}
		if withUserName {
			dest = append(dest, &req.UserName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
