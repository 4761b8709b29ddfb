package report

import (
	"context"
	"fmt"
	"time"

	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
	"github.com/qrworks/qrworks-backend-go/internal/domain/holiday"
	"github.com/qrworks/qrworks-backend-go/internal/domain/report"
	"github.com/qrworks/qrworks-backend-go/internal/domain/schedule"
	"github.com/qrworks/qrworks-backend-go/internal/domain/user"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/clock"
	"github.com/qrworks/qrworks-backend-go/internal/service/timesheet"
)

type ReportServiceImpl struct {
	eventRepo    attendance.EventRepository
	scheduleRepo schedule.ScheduleRepository
	holidayRepo  holiday.WorkEntryRepository
	userRepo     user.UserRepository
	location     *time.Location
}

func NewReportService(
	eventRepo attendance.EventRepository,
	scheduleRepo schedule.ScheduleRepository,
	holidayRepo holiday.WorkEntryRepository,
	userRepo user.UserRepository,
	location *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		eventRepo:    eventRepo,
		scheduleRepo: scheduleRepo,
		holidayRepo:  holidayRepo,
		userRepo:     userRepo,
		location:     location,
	}
}

// GenerateMonthlyAttendanceReport implements report.ReportService. Each
// employee's row comes from the same fold that builds their monthly card.
func (s *ReportServiceImpl) GenerateMonthlyAttendanceReport(ctx context.Context, req report.MonthlyAttendanceReportRequest) (report.MonthlyAttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, s.location)
	to := from.AddDate(0, 1, 0)

	events, err := s.eventRepo.ListByRange(ctx, from, to)
	if err != nil {
		return report.MonthlyAttendanceReport{}, fmt.Errorf("failed to list punches: %w", err)
	}

	days, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		return report.MonthlyAttendanceReport{}, fmt.Errorf("failed to load schedule: %w", err)
	}
	holidays, err := s.holidayRepo.ListByRange(ctx, from, to)
	if err != nil {
		return report.MonthlyAttendanceReport{}, fmt.Errorf("failed to load holiday entries: %w", err)
	}

	userIDs, totals, err := timesheet.AggregateByUser(events, schedule.SetOf(days), holidays)
	if err != nil {
		return report.MonthlyAttendanceReport{}, fmt.Errorf("failed to aggregate report: %w", err)
	}

	names := make(map[string]string)
	for _, ev := range events {
		if ev.UserName != nil {
			names[ev.UserID] = *ev.UserName
		}
	}

	rows := make([]report.EmployeeMonthlyRow, 0, len(userIDs))
	for _, userID := range userIDs {
		t := totals[userID]
		fullName := names[userID]
		if fullName == "" {
			// Punches without a joined name fall back to a user lookup.
			if u, err := s.userRepo.GetByID(ctx, userID); err == nil {
				fullName = u.FullName
			}
		}

		rows = append(rows, report.EmployeeMonthlyRow{
			UserID:                 userID,
			FullName:               fullName,
			RegularWorkMinutes:     t.RegularWorkMinutes,
			OvertimeMinutes:        t.OvertimeMinutes,
			HolidayRegularMinutes:  t.HolidayRegularMinutes,
			HolidayExceededMinutes: t.HolidayExceededMinutes,
			HolidayExtraMinutes:    t.HolidayExtraMinutes,
			TotalMinutes:           t.TotalMinutes,
			TotalFormatted:         clock.FormatDuration(t.TotalMinutes),
		})
	}

	return report.MonthlyAttendanceReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: from.Format("2006-01-02"),
		PeriodEnd:   to.AddDate(0, 0, -1).Format("2006-01-02"),
		GeneratedAt: time.Now().In(s.location).Format(time.RFC3339),
		Employees:   rows,
	}, nil
}
