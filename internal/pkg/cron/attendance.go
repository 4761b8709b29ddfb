package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
	"github.com/qrworks/qrworks-backend-go/internal/domain/schedule"
	"github.com/qrworks/qrworks-backend-go/internal/service/timesheet"
)

type AttendanceJobs struct {
	eventRepo    attendance.EventRepository
	scheduleRepo schedule.ScheduleRepository
	location     *time.Location
}

func NewAttendanceJobs(
	eventRepo attendance.EventRepository,
	scheduleRepo schedule.ScheduleRepository,
	location *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		eventRepo:    eventRepo,
		scheduleRepo: scheduleRepo,
		location:     location,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_checkout_open_sessions", 1*time.Hour, j.AutoCheckoutOpenSessions)
}

// AutoCheckoutOpenSessions closes yesterday's forgotten sessions: employees
// who checked in but never punched a check-out or overtime end get a
// synthetic check-out at their scheduled work end. The HasEventOfKind guard
// makes the job idempotent across restarts.
func (j *AttendanceJobs) AutoCheckoutOpenSessions(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 company time)
	if time.Now().In(j.location).Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-checkout job")

	yesterday := time.Now().In(j.location).AddDate(0, 0, -1)
	dateLocal := yesterday.Format("2006-01-02")

	openCheckIns, err := j.eventRepo.ListOpenCheckIns(ctx, dateLocal)
	if err != nil {
		return fmt.Errorf("failed to list open check-ins: %w", err)
	}
	if len(openCheckIns) == 0 {
		slog.Info("Cron: No open sessions found", "date", dateLocal)
		return nil
	}

	days, err := j.scheduleRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}
	schedules := schedule.SetOf(days)

	closedCount := 0
	for _, checkIn := range openCheckIns {
		alreadyClosed, err := j.eventRepo.HasEventOfKind(ctx, checkIn.UserID, dateLocal, attendance.KindCheckOut)
		if err != nil {
			slog.Error("Cron: Failed to check existing check-out", "user_id", checkIn.UserID, "error", err)
			continue
		}
		if alreadyClosed {
			continue
		}

		// Close at the scheduled work end; on a non-working day fall back
		// to the check-in instant so the session contributes nothing.
		checkOutAt := checkIn.Timestamp
		if day, ok := schedules[checkIn.Timestamp.Weekday()]; ok {
			win, err := timesheet.ResolveShiftWindow(day, checkIn.Timestamp)
			if err != nil {
				slog.Error("Cron: Failed to resolve shift window", "user_id", checkIn.UserID, "error", err)
				continue
			}
			if win != nil && win.WorkEnd.After(checkOutAt) {
				checkOutAt = win.WorkEnd
			}
		}

		reason := "Auto-closed: no check-out detected by end of day"
		_, err = j.eventRepo.Create(ctx, attendance.Event{
			ID:        uuid.NewString(),
			UserID:    checkIn.UserID,
			Kind:      attendance.KindCheckOut,
			Timestamp: checkOutAt,
			Reason:    &reason,
		})
		if err != nil {
			slog.Error("Cron: Failed to auto-close session", "user_id", checkIn.UserID, "error", err)
			continue
		}
		closedCount++
	}

	slog.Info("Cron: Auto-closed open sessions", "date", dateLocal, "count", closedCount)
	return nil
}
