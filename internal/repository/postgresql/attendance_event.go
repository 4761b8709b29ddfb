package postgresql

import (
	"context"
	"time"

	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/database"
)

type attendanceEventRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceEventRepository(db *database.DB) attendance.EventRepository {
	return &attendanceEventRepositoryImpl{db: db}
}

// Create implements attendance.EventRepository.
func (r *attendanceEventRepositoryImpl) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (
			id, user_id, kind, ts, location, night_shift_anchor, reason
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, kind, ts, location, night_shift_anchor, reason, created_at
	`

	var created attendance.Event
	err := q.QueryRow(ctx, query,
		event.ID,
		event.UserID,
		event.Kind,
		event.Timestamp,
		event.Location,
		event.NightShiftAnchor,
		event.Reason,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Kind,
		&created.Timestamp,
		&created.Location,
		&created.NightShiftAnchor,
		&created.Reason,
		&created.CreatedAt,
	)
	if err != nil {
		return attendance.Event{}, err
	}

	return created, nil
}

// ListByUserAndRange implements attendance.EventRepository.
func (r *attendanceEventRepositoryImpl) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, kind, ts, location, night_shift_anchor, reason, created_at
		FROM attendance_events
		WHERE user_id = $1 AND ts >= $2 AND ts < $3
		ORDER BY ts ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var ev attendance.Event
		if err := rows.Scan(
			&ev.ID,
			&ev.UserID,
			&ev.Kind,
			&ev.Timestamp,
			&ev.Location,
			&ev.NightShiftAnchor,
			&ev.Reason,
			&ev.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// ListByRange implements attendance.EventRepository.
func (r *attendanceEventRepositoryImpl) ListByRange(ctx context.Context, from, to time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.kind, e.ts, e.location, e.night_shift_anchor, e.reason, e.created_at,
			   u.full_name
		FROM attendance_events e
		JOIN users u ON u.id = e.user_id
		WHERE e.ts >= $1 AND e.ts < $2
		ORDER BY e.user_id, e.ts ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var ev attendance.Event
		if err := rows.Scan(
			&ev.ID,
			&ev.UserID,
			&ev.Kind,
			&ev.Timestamp,
			&ev.Location,
			&ev.NightShiftAnchor,
			&ev.Reason,
			&ev.CreatedAt,
			&ev.UserName,
		); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// HasEventOfKind implements attendance.EventRepository.
func (r *attendanceEventRepositoryImpl) HasEventOfKind(ctx context.Context, userID string, dateLocal string, kind attendance.EventKind) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM attendance_events
			WHERE user_id = $1 AND kind = $2 AND to_char(ts, 'YYYY-MM-DD') = $3
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, userID, kind, dateLocal).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListOpenCheckIns implements attendance.EventRepository.
func (r *attendanceEventRepositoryImpl) ListOpenCheckIns(ctx context.Context, dateLocal string) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.kind, e.ts, e.location, e.night_shift_anchor, e.reason, e.created_at
		FROM attendance_events e
		WHERE e.kind = 'CHECK_IN'
		  AND to_char(e.ts, 'YYYY-MM-DD') = $1
		  AND NOT EXISTS (
			SELECT 1 FROM attendance_events x
			WHERE x.user_id = e.user_id
			  AND x.kind IN ('CHECK_OUT', 'OVERTIME_END')
			  AND to_char(x.ts, 'YYYY-MM-DD') = $1
		  )
		ORDER BY e.ts ASC
	`

	rows, err := q.Query(ctx, query, dateLocal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var ev attendance.Event
		if err := rows.Scan(
			&ev.ID,
			&ev.UserID,
			&ev.Kind,
			&ev.Timestamp,
			&ev.Location,
			&ev.NightShiftAnchor,
			&ev.Reason,
			&ev.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}
