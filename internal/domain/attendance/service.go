package attendance

import (
	"context"
)

// AttendanceService defines business logic for punch recording and the
// derived attendance views.
type AttendanceService interface {
	// RecordPunch stores a validated punch for the authenticated user
	RecordPunch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// GetMyPunches retrieves the authenticated user's punches
	GetMyPunches(ctx context.Context, filter PunchFilter) ([]PunchResponse, error)

	// GetMyDayStatus composes the attendance card for one local date.
	// Returns nil when the day has no check-in or no schedule row exists
	// for its weekday.
	GetMyDayStatus(ctx context.Context, date string) (*DayStatusResponse, error)

	// GetMyMonthlySummary folds a month of punches into totals
	GetMyMonthlySummary(ctx context.Context, year, month int) (MonthlySummaryResponse, error)
}
