package timesheet

import (
	"time"

	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
	"github.com/qrworks/qrworks-backend-go/internal/domain/holiday"
	"github.com/qrworks/qrworks-backend-go/internal/domain/schedule"
)

// Shared fixtures. 2025-03-10 is a Monday, 2025-03-09 a Sunday.
var seoul = mustLoadLocation("Asia/Seoul")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// weekSchedules builds the standard test week: Mon-Fri 09:00-18:00 with
// lunch 12:00-13:00, Sat/Sun non-working.
func weekSchedules() schedule.ScheduleSet {
	set := make(schedule.ScheduleSet, 7)
	for wd := 0; wd < 7; wd++ {
		working := wd >= 1 && wd <= 5
		day := schedule.DaySchedule{
			Weekday:      wd,
			IsWorkingDay: working,
			WorkStart:    "09:00",
			WorkEnd:      "18:00",
			LunchStart:   "12:00",
			LunchEnd:     "13:00",
		}
		if !working {
			day.WorkStart = "00:00"
			day.WorkEnd = "00:00"
			day.LunchStart = "00:00"
			day.LunchEnd = "00:00"
		}
		set[time.Weekday(wd)] = day
	}
	return set
}

// at returns an instant on the given date at "HH:MM" in the test location.
func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, seoul)
}

// monday is 2025-03-10 at the given time.
func monday(hour, minute int) time.Time {
	return at(2025, time.March, 10, hour, minute)
}

// sunday is 2025-03-09 at the given time.
func sunday(hour, minute int) time.Time {
	return at(2025, time.March, 9, hour, minute)
}

func punch(userID string, kind attendance.EventKind, ts time.Time) attendance.Event {
	return attendance.Event{
		ID:        userID + "-" + string(kind) + "-" + ts.Format("150405"),
		UserID:    userID,
		Kind:      kind,
		Timestamp: ts,
	}
}

func overtimePunch(userID string, ts time.Time, anchor *time.Time) attendance.Event {
	ev := punch(userID, attendance.KindOvertimeEnd, ts)
	ev.NightShiftAnchor = anchor
	return ev
}

func mondayWindow() *ShiftWindow {
	win, err := ResolveShiftWindow(weekSchedules()[time.Monday], monday(0, 0))
	if err != nil {
		panic(err)
	}
	return win
}

func holidayEntry(date time.Time, allotted, extra int) holiday.WorkEntry {
	return holiday.WorkEntry{
		ID:                   "h-" + date.Format("20060102"),
		Date:                 date,
		AllottedMinutes:      allotted,
		ExtraOvertimeMinutes: extra,
	}
}
