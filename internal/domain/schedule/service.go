package schedule

import (
	"context"
)

// ScheduleService defines business logic for the weekly schedule
// configuration.
type ScheduleService interface {
	// GetSchedule retrieves the configured week
	GetSchedule(ctx context.Context) ([]DayScheduleResponse, error)

	// UpdateSchedule validates and replaces the full week (admin only)
	UpdateSchedule(ctx context.Context, req UpdateScheduleRequest) ([]DayScheduleResponse, error)
}
