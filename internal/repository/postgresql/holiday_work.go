package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/qrworks/qrworks-backend-go/internal/domain/holiday"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/database"
)

type holidayWorkRepositoryImpl struct {
	db *database.DB
}

func NewHolidayWorkRepository(db *database.DB) holiday.WorkEntryRepository {
	return &holidayWorkRepositoryImpl{db: db}
}

// Create implements holiday.WorkEntryRepository.
func (r *holidayWorkRepositoryImpl) Create(ctx context.Context, entry holiday.WorkEntry) (holiday.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holiday_work_entries (
			id, date, allotted_minutes, extra_overtime_minutes, description
		)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, date, allotted_minutes, extra_overtime_minutes, description, created_at, updated_at
	`

	var created holiday.WorkEntry
	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.Date,
		entry.AllottedMinutes,
		entry.ExtraOvertimeMinutes,
		entry.Description,
	).Scan(
		&created.ID,
		&created.Date,
		&created.AllottedMinutes,
		&created.ExtraOvertimeMinutes,
		&created.Description,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.WorkEntry{}, holiday.ErrDuplicateDate
		}
		return holiday.WorkEntry{}, err
	}

	return created, nil
}

// ListByRange implements holiday.WorkEntryRepository.
func (r *holidayWorkRepositoryImpl) ListByRange(ctx context.Context, from, to time.Time) ([]holiday.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, allotted_minutes, extra_overtime_minutes, description, created_at, updated_at
		FROM holiday_work_entries
		WHERE date >= $1 AND date < $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []holiday.WorkEntry
	for rows.Next() {
		var entry holiday.WorkEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.AllottedMinutes,
			&entry.ExtraOvertimeMinutes,
			&entry.Description,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Delete implements holiday.WorkEntryRepository.
func (r *holidayWorkRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holiday_work_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrEntryNotFound
	}
	return nil
}
