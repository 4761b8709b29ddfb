// Package timesheet is the time-accounting engine: pure functions that turn
// raw punch events plus a weekday schedule into lateness, early-leave,
// regular/overtime/holiday minutes and monthly aggregates. Nothing in this
// package performs I/O or holds state; callers fetch the inputs and render
// the outputs.
package timesheet

import (
	"time"

	"github.com/qrworks/qrworks-backend-go/internal/domain/schedule"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/clock"
)

// ShiftWindow is one weekday's schedule anchored to a calendar date, with
// every wall-clock string resolved to an absolute instant on that date.
type ShiftWindow struct {
	WorkStart  time.Time
	WorkEnd    time.Time
	LunchStart time.Time
	LunchEnd   time.Time
	Lunch      bool
}

// HasLunch reports whether the weekday has a configured lunch break. False
// when both sides are the "00:00" sentinel or either side is empty. This is
// the only lunch predicate in the codebase; no caller re-derives it.
func HasLunch(day schedule.DaySchedule) bool {
	if day.LunchStart == "" || day.LunchEnd == "" {
		return false
	}
	return !(day.LunchStart == "00:00" && day.LunchEnd == "00:00")
}

// ResolveShiftWindow anchors the weekday schedule to the given date,
// producing absolute instants in the date's location. Returns nil for
// non-working days. A malformed time string fails with
// clock.ErrInvalidTimeFormat.
func ResolveShiftWindow(day schedule.DaySchedule, date time.Time) (*ShiftWindow, error) {
	if !day.IsWorkingDay {
		return nil, nil
	}

	workStart, err := atMinuteOfDay(date, day.WorkStart)
	if err != nil {
		return nil, err
	}
	workEnd, err := atMinuteOfDay(date, day.WorkEnd)
	if err != nil {
		return nil, err
	}

	win := &ShiftWindow{
		WorkStart: workStart,
		WorkEnd:   workEnd,
	}

	if HasLunch(day) {
		lunchStart, err := atMinuteOfDay(date, day.LunchStart)
		if err != nil {
			return nil, err
		}
		lunchEnd, err := atMinuteOfDay(date, day.LunchEnd)
		if err != nil {
			return nil, err
		}
		win.LunchStart = lunchStart
		win.LunchEnd = lunchEnd
		win.Lunch = true
	}

	return win, nil
}

func atMinuteOfDay(date time.Time, hhmm string) (time.Time, error) {
	minute, err := clock.MinuteOfDay(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		minute/60, minute%60, 0, 0,
		date.Location(),
	), nil
}
