package timesheet

import (
	"sort"

	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
	"github.com/qrworks/qrworks-backend-go/internal/domain/holiday"
	"github.com/qrworks/qrworks-backend-go/internal/domain/schedule"
)

// MonthlyTotals is the fold of DayStatus and holiday work over a period.
type MonthlyTotals struct {
	RegularWorkMinutes     int
	OvertimeMinutes        int
	HolidayRegularMinutes  int
	HolidayExceededMinutes int
	HolidayExtraMinutes    int
	TotalMinutes           int
}

// AggregateMonth folds one user's events over a period: regular minutes
// from ordinary working days, overtime from non-holiday days, and the
// holiday buckets from AggregateHolidayWork. The same fold backs both the
// single-employee monthly card and the cross-employee report, which keeps
// the two views numerically identical by construction.
func AggregateMonth(events []attendance.Event, schedules schedule.ScheduleSet, holidays []holiday.WorkEntry) (MonthlyTotals, error) {
	var totals MonthlyTotals

	for _, dayEvents := range groupByDate(events) {
		status, err := ComposeDayStatus(dayEvents, schedules, holidays)
		if err != nil {
			return MonthlyTotals{}, err
		}
		if status == nil {
			continue
		}

		if !status.IsHoliday && !status.IsNonWorkingDay && status.RegularWorkMinutes != nil {
			totals.RegularWorkMinutes += *status.RegularWorkMinutes
		}
		if !status.IsHoliday && status.OvertimeMinutes != nil {
			totals.OvertimeMinutes += *status.OvertimeMinutes
		}
	}

	summary := AggregateHolidayWork(CheckInDates(events), holidays)
	totals.HolidayRegularMinutes = summary.RegularMinutes
	totals.HolidayExceededMinutes = summary.ExceededMinutes
	totals.HolidayExtraMinutes = summary.ExtraMinutes

	totals.TotalMinutes = totals.RegularWorkMinutes +
		totals.OvertimeMinutes +
		totals.HolidayRegularMinutes +
		totals.HolidayExceededMinutes +
		totals.HolidayExtraMinutes

	return totals, nil
}

// AggregateByUser splits a period's events by user and runs AggregateMonth
// on each slice. Keys are returned in sorted order for deterministic report
// rows.
func AggregateByUser(events []attendance.Event, schedules schedule.ScheduleSet, holidays []holiday.WorkEntry) ([]string, map[string]MonthlyTotals, error) {
	byUser := make(map[string][]attendance.Event)
	for _, ev := range events {
		byUser[ev.UserID] = append(byUser[ev.UserID], ev)
	}

	userIDs := make([]string, 0, len(byUser))
	totals := make(map[string]MonthlyTotals, len(byUser))
	for userID, userEvents := range byUser {
		t, err := AggregateMonth(userEvents, schedules, holidays)
		if err != nil {
			return nil, nil, err
		}
		userIDs = append(userIDs, userID)
		totals[userID] = t
	}
	sort.Strings(userIDs)

	return userIDs, totals, nil
}

func groupByDate(events []attendance.Event) map[string][]attendance.Event {
	byDate := make(map[string][]attendance.Event)
	for _, ev := range events {
		date := attendance.DateOf(ev.Timestamp)
		byDate[date] = append(byDate[date], ev)
	}
	return byDate
}
