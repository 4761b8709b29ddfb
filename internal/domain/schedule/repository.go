package schedule

import (
	"context"
)

// ScheduleRepository defines data access for the weekly schedule. There is
// exactly one row per weekday (unique index); writes replace the whole week
// in one transaction so readers never observe a partial update.
type ScheduleRepository interface {
	// GetAll retrieves all configured weekday rows ordered by weekday
	GetAll(ctx context.Context) ([]DaySchedule, error)

	// ReplaceAll upserts the full seven-day set
	ReplaceAll(ctx context.Context, days []DaySchedule) error
}
