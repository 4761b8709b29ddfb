package timesheet

import (
	"sort"
	"time"

	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
	"github.com/qrworks/qrworks-backend-go/internal/domain/holiday"
	"github.com/qrworks/qrworks-backend-go/internal/domain/schedule"
)

// DayStatus is the composed attendance state of one employee-day. Minute
// pointers are nil until the day has a terminal punch ("checked in, no
// status yet"). Values are raw engine output: negatives are possible on
// inconsistent event order and are clamped by presentation, not here.
type DayStatus struct {
	Date                 time.Time
	IsLate               bool
	LateMinutes          int
	IsEarlyLeave         bool
	EarlyLeaveMinutes    int
	IsHoliday            bool
	IsNonWorkingDay      bool
	RegularWorkMinutes   *int
	OvertimeMinutes      *int
	LunchOvertimeMinutes int
	TotalWorkMinutes     *int
	HolidayWorkMinutes   *int
	HolidayWorkExceeded  bool
}

// ComposeDayStatus folds one day's events for a single user into a
// DayStatus. Returns (nil, nil) when the day has no check-in or no schedule
// row exists for its weekday — both are expected "no data" states, and the
// engine never fabricates a default schedule. Events may arrive unordered;
// they are sorted here.
func ComposeDayStatus(events []attendance.Event, schedules schedule.ScheduleSet, holidays []holiday.WorkEntry) (*DayStatus, error) {
	if len(events) == 0 {
		return nil, nil
	}

	sorted := make([]attendance.Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var checkIn *attendance.Event
	for i := range sorted {
		if sorted[i].Kind == attendance.KindCheckIn {
			checkIn = &sorted[i]
			break
		}
	}
	if checkIn == nil {
		return nil, nil
	}

	day, ok := schedules[checkIn.Timestamp.Weekday()]
	if !ok {
		return nil, nil
	}

	win, err := ResolveShiftWindow(day, checkIn.Timestamp)
	if err != nil {
		return nil, err
	}

	status := &DayStatus{
		Date:            checkIn.Timestamp,
		IsNonWorkingDay: !day.IsWorkingDay,
	}

	date := attendance.DateOf(checkIn.Timestamp)
	for _, entry := range holidays {
		if entry.Date.Format("2006-01-02") == date {
			status.IsHoliday = true
			minutes := entry.AllottedMinutes + entry.ExtraOvertimeMinutes
			status.HolidayWorkMinutes = &minutes
			status.HolidayWorkExceeded = entry.AllottedMinutes > StatutoryHolidayMinutes
			break
		}
	}

	// An after-hours check-in starts an overtime session, not a late one.
	if win != nil && ClockMinuteNotAfter(checkIn.Timestamp, win.WorkEnd) {
		late := CheckLate(checkIn.Timestamp, win)
		status.IsLate = late.IsLate
		status.LateMinutes = late.Minutes
	}

	var lastActivity *attendance.Event
	for i := len(sorted) - 1; i >= 0; i-- {
		kind := sorted[i].Kind
		if kind == attendance.KindCheckOut || kind == attendance.KindOvertimeEnd {
			lastActivity = &sorted[i]
			break
		}
	}
	if lastActivity == nil {
		// Checked in, nothing terminal yet: lateness is known, hours are not.
		return status, nil
	}

	if win != nil && lastActivity.Kind == attendance.KindCheckOut {
		early := CheckEarlyLeave(lastActivity.Timestamp, win)
		status.IsEarlyLeave = early.IsEarlyLeave
		status.EarlyLeaveMinutes = early.Minutes
	}

	work := ClippedWorkMinutes(checkIn.Timestamp, lastActivity.Timestamp, win)
	status.RegularWorkMinutes = &work

	hasOvertime := false
	for _, ev := range sorted {
		if ev.Kind == attendance.KindOvertimeEnd {
			hasOvertime = true
			break
		}
	}

	total := work
	if hasOvertime && !status.IsHoliday {
		overtime := ComputeOvertime(sorted, checkIn.Timestamp, lastActivity.Timestamp, win, status.IsNonWorkingDay)
		status.OvertimeMinutes = &overtime.TotalMinutes
		status.LunchOvertimeMinutes = overtime.LunchMinutes

		if status.IsNonWorkingDay {
			// Overtime already equals the full elapsed span.
			total = overtime.TotalMinutes
		} else {
			total = work + overtime.LunchMinutes
		}
	}
	status.TotalWorkMinutes = &total

	return status, nil
}

// ClockMinuteNotAfter reports whether a's wall-clock time of day is not
// after b's.
func ClockMinuteNotAfter(a, b time.Time) bool {
	return a.Hour()*60+a.Minute() <= b.Hour()*60+b.Minute()
}
