package schedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/qrworks/qrworks-backend-go/internal/domain/schedule"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/database"
	"github.com/qrworks/qrworks-backend-go/internal/repository/postgresql"
)

type ScheduleServiceImpl struct {
	db           *database.DB
	scheduleRepo schedule.ScheduleRepository
}

func NewScheduleService(db *database.DB, scheduleRepo schedule.ScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:           db,
		scheduleRepo: scheduleRepo,
	}
}

// GetSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context) ([]schedule.DayScheduleResponse, error) {
	days, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	if len(days) == 0 {
		return nil, schedule.ErrScheduleNotFound
	}

	return toResponses(days), nil
}

// UpdateSchedule implements schedule.ScheduleService. The whole week is
// replaced in one transaction; a malformed row fails the entire save.
func (s *ScheduleServiceImpl) UpdateSchedule(ctx context.Context, req schedule.UpdateScheduleRequest) ([]schedule.DayScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	days := make([]schedule.DaySchedule, 0, len(req.Days))
	for _, input := range req.Days {
		day := schedule.DaySchedule{
			Weekday:      input.Weekday,
			IsWorkingDay: input.IsWorkingDay,
			WorkStart:    input.WorkStart,
			WorkEnd:      input.WorkEnd,
			LunchStart:   input.LunchStart,
			LunchEnd:     input.LunchEnd,
		}
		// Non-working rows carry the "00:00" sentinel regardless of input.
		if !input.IsWorkingDay {
			day.WorkStart = "00:00"
			day.WorkEnd = "00:00"
			day.LunchStart = "00:00"
			day.LunchEnd = "00:00"
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Weekday < days[j].Weekday })

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.scheduleRepo.ReplaceAll(txCtx, days)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace schedule: %w", err)
	}

	stored, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload schedule: %w", err)
	}

	return toResponses(stored), nil
}

func toResponses(days []schedule.DaySchedule) []schedule.DayScheduleResponse {
	responses := make([]schedule.DayScheduleResponse, 0, len(days))
	for _, day := range days {
		responses = append(responses, schedule.DayScheduleResponse{
			Weekday:      day.Weekday,
			IsWorkingDay: day.IsWorkingDay,
			WorkStart:    day.WorkStart,
			WorkEnd:      day.WorkEnd,
			LunchStart:   day.LunchStart,
			LunchEnd:     day.LunchEnd,
		})
	}
	return responses
}
