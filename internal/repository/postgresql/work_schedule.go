package postgresql

import (
	"context"

	"github.com/qrworks/qrworks-backend-go/internal/domain/schedule"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/database"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

// GetAll implements schedule.ScheduleRepository.
func (r *workScheduleRepositoryImpl) GetAll(ctx context.Context) ([]schedule.DaySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT weekday, is_working_day, work_start, work_end, lunch_start, lunch_end, updated_at
		FROM work_schedules
		ORDER BY weekday ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []schedule.DaySchedule
	for rows.Next() {
		var day schedule.DaySchedule
		if err := rows.Scan(
			&day.Weekday,
			&day.IsWorkingDay,
			&day.WorkStart,
			&day.WorkEnd,
			&day.LunchStart,
			&day.LunchEnd,
			&day.UpdatedAt,
		); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, rows.Err()
}

// ReplaceAll implements schedule.ScheduleRepository. Callers wrap this in a
// transaction so the week is swapped atomically.
func (r *workScheduleRepositoryImpl) ReplaceAll(ctx context.Context, days []schedule.DaySchedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (weekday, is_working_day, work_start, work_end, lunch_start, lunch_end, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (weekday) DO UPDATE SET
			is_working_day = EXCLUDED.is_working_day,
			work_start = EXCLUDED.work_start,
			work_end = EXCLUDED.work_end,
			lunch_start = EXCLUDED.lunch_start,
			lunch_end = EXCLUDED.lunch_end,
			updated_at = NOW()
	`

	for _, day := range days {
		if _, err := q.Exec(ctx, query,
			day.Weekday,
			day.IsWorkingDay,
			day.WorkStart,
			day.WorkEnd,
			day.LunchStart,
			day.LunchEnd,
		); err != nil {
			return err
		}
	}

	return nil
}
