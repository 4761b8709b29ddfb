package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
	"github.com/qrworks/qrworks-backend-go/internal/domain/holiday"
	"github.com/qrworks/qrworks-backend-go/internal/domain/schedule"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/clock"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/database"
	"github.com/qrworks/qrworks-backend-go/internal/service/timesheet"
)

type AttendanceServiceImpl struct {
	db           *database.DB
	eventRepo    attendance.EventRepository
	scheduleRepo schedule.ScheduleRepository
	holidayRepo  holiday.WorkEntryRepository
	location     *time.Location
}

func NewAttendanceService(
	db *database.DB,
	eventRepo attendance.EventRepository,
	scheduleRepo schedule.ScheduleRepository,
	holidayRepo holiday.WorkEntryRepository,
	location *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:           db,
		eventRepo:    eventRepo,
		scheduleRepo: scheduleRepo,
		holidayRepo:  holidayRepo,
		location:     location,
	}
}

// RecordPunch implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordPunch(ctx context.Context, req attendance.PunchRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	ts := time.Now().In(s.location)
	if req.Timestamp != nil && *req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err != nil {
			return attendance.PunchResponse{}, fmt.Errorf("failed to parse timestamp: %w", err)
		}
		ts = parsed.In(s.location)
	}

	kind := attendance.EventKind(req.Kind)
	dateLocal := attendance.DateOf(ts)

	hasCheckIn, err := s.eventRepo.HasEventOfKind(ctx, userID, dateLocal, attendance.KindCheckIn)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to check existing punches: %w", err)
	}
	switch kind {
	case attendance.KindCheckIn:
		if hasCheckIn {
			return attendance.PunchResponse{}, attendance.ErrAlreadyCheckedIn
		}
	case attendance.KindCheckOut, attendance.KindOvertimeEnd:
		if !hasCheckIn {
			return attendance.PunchResponse{}, attendance.ErrNotCheckedIn
		}
	default:
		return attendance.PunchResponse{}, attendance.ErrInvalidEventKind
	}

	var anchor *time.Time
	if req.NightShiftAnchor != nil && *req.NightShiftAnchor != "" {
		parsed, err := time.Parse(time.RFC3339, *req.NightShiftAnchor)
		if err != nil {
			return attendance.PunchResponse{}, fmt.Errorf("failed to parse night shift anchor: %w", err)
		}
		local := parsed.In(s.location)
		anchor = &local
	}

	created, err := s.eventRepo.Create(ctx, attendance.Event{
		ID:               uuid.NewString(),
		UserID:           userID,
		Kind:             kind,
		Timestamp:        ts,
		Location:         req.Location,
		NightShiftAnchor: anchor,
		Reason:           req.Reason,
	})
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to store punch: %w", err)
	}

	return toPunchResponse(created), nil
}

// GetMyPunches implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyPunches(ctx context.Context, filter attendance.PunchFilter) ([]attendance.PunchResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Default range is the current calendar month.
	now := time.Now().In(s.location)
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location)
	to := from.AddDate(0, 1, 0)

	if filter.StartDate != nil && *filter.StartDate != "" {
		from, err = s.parseLocalDate(*filter.StartDate)
		if err != nil {
			return nil, err
		}
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		end, err := s.parseLocalDate(*filter.EndDate)
		if err != nil {
			return nil, err
		}
		to = end.AddDate(0, 0, 1)
	}

	events, err := s.eventRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]attendance.PunchResponse, 0, len(events))
	for _, ev := range events {
		if filter.Kind != nil && *filter.Kind != "" && string(ev.Kind) != *filter.Kind {
			continue
		}
		responses = append(responses, toPunchResponse(ev))
	}

	return responses, nil
}

// GetMyDayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyDayStatus(ctx context.Context, date string) (*attendance.DayStatusResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	dayStart, err := s.parseLocalDate(date)
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := s.eventRepo.ListByUserAndRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	schedules, holidays, err := s.loadEngineInputs(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	status, err := timesheet.ComposeDayStatus(events, schedules, holidays)
	if err != nil {
		return nil, fmt.Errorf("failed to compose day status: %w", err)
	}
	if status == nil {
		return nil, nil
	}

	return toDayStatusResponse(date, status), nil
}

// GetMyMonthlySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyMonthlySummary(ctx context.Context, year, month int) (attendance.MonthlySummaryResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.location)
	to := from.AddDate(0, 1, 0)

	events, err := s.eventRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	schedules, holidays, err := s.loadEngineInputs(ctx, from, to)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	totals, err := timesheet.AggregateMonth(events, schedules, holidays)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to aggregate month: %w", err)
	}

	return attendance.MonthlySummaryResponse{
		Year:                     year,
		Month:                    month,
		RegularWorkMinutes:       totals.RegularWorkMinutes,
		OvertimeMinutes:          totals.OvertimeMinutes,
		HolidayRegularMinutes:    totals.HolidayRegularMinutes,
		HolidayExceededMinutes:   totals.HolidayExceededMinutes,
		HolidayExtraMinutes:      totals.HolidayExtraMinutes,
		TotalMinutes:             totals.TotalMinutes,
		TotalFormatted:           clock.FormatDuration(totals.TotalMinutes),
		RegularWorkFormatted:     clock.FormatDuration(totals.RegularWorkMinutes),
		OvertimeFormatted:        clock.FormatDuration(totals.OvertimeMinutes),
		HolidayRegularFormatted:  clock.FormatDuration(totals.HolidayRegularMinutes),
		HolidayExceededFormatted: clock.FormatDuration(totals.HolidayExceededMinutes),
		HolidayExtraFormatted:    clock.FormatDuration(totals.HolidayExtraMinutes),
	}, nil
}

// loadEngineInputs fetches the schedule week and the period's holiday
// entries, the two static inputs every engine call needs.
func (s *AttendanceServiceImpl) loadEngineInputs(ctx context.Context, from, to time.Time) (schedule.ScheduleSet, []holiday.WorkEntry, error) {
	days, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	holidays, err := s.holidayRepo.ListByRange(ctx, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load holiday entries: %w", err)
	}

	return schedule.SetOf(days), holidays, nil
}

func (s *AttendanceServiceImpl) parseLocalDate(date string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", date, s.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", date, err)
	}
	return parsed, nil
}

func toPunchResponse(ev attendance.Event) attendance.PunchResponse {
	resp := attendance.PunchResponse{
		ID:        ev.ID,
		UserID:    ev.UserID,
		Kind:      string(ev.Kind),
		Timestamp: ev.Timestamp.Format(time.RFC3339),
		Location:  ev.Location,
		Reason:    ev.Reason,
	}
	if ev.NightShiftAnchor != nil {
		anchor := ev.NightShiftAnchor.Format(time.RFC3339)
		resp.NightShiftAnchor = &anchor
	}
	return resp
}

// toDayStatusResponse renders engine output for the client. Raw negative
// minute counts are clamped to zero here, at the presentation boundary.
func toDayStatusResponse(date string, status *timesheet.DayStatus) *attendance.DayStatusResponse {
	resp := &attendance.DayStatusResponse{
		Date:                  date,
		IsLate:                status.IsLate,
		LateMinutes:           status.LateMinutes,
		IsEarlyLeave:          status.IsEarlyLeave,
		EarlyLeaveMinutes:     status.EarlyLeaveMinutes,
		IsHoliday:             status.IsHoliday,
		IsNonWorkingDay:       status.IsNonWorkingDay,
		LunchOvertimeMinutes:  clampMinutes(status.LunchOvertimeMinutes),
		IsHolidayWorkExceeded: status.HolidayWorkExceeded,
	}

	resp.RegularWorkMinutes, resp.RegularWorkFormatted = presentMinutes(status.RegularWorkMinutes)
	resp.OvertimeMinutes, resp.OvertimeFormatted = presentMinutes(status.OvertimeMinutes)
	resp.TotalWorkMinutes, resp.TotalWorkFormatted = presentMinutes(status.TotalWorkMinutes)
	if status.HolidayWorkMinutes != nil {
		clamped := clampMinutes(*status.HolidayWorkMinutes)
		resp.HolidayWorkMinutes = &clamped
	}

	return resp
}

func presentMinutes(minutes *int) (*int, *string) {
	if minutes == nil {
		return nil, nil
	}
	clamped := clampMinutes(*minutes)
	formatted := clock.FormatDuration(clamped)
	return &clamped, &formatted
}

func clampMinutes(minutes int) int {
	if minutes < 0 {
		return 0
	}
	return minutes
}

// userIDFromContext extracts the authenticated user from JWT claims.
func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id not found in token")
	}

	return userID, nil
}
