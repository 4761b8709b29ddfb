package timesheet

import (
	"math"
	"time"
)

// WorkMinutes returns the elapsed minutes between check-in and the last
// activity, minus any overlap with the lunch window. This is the unclipped
// variant used for "total time including overtime" views. The result is not
// clamped: an inconsistent event order yields a negative count that callers
// treat as "no contribution" at the presentation boundary.
func WorkMinutes(checkIn, lastActivity time.Time, win *ShiftWindow) int {
	raw := wholeMinutes(lastActivity.Sub(checkIn))
	return raw - lunchOverlapMinutes(checkIn, lastActivity, win)
}

// ClippedWorkMinutes clips the session to the scheduled window (check-in
// never earlier than work start, last activity never later than work end)
// before subtracting the lunch overlap. Returns 0 when the clipped span is
// empty or the day has no window. This is the variant monthly "regular
// work" aggregation uses; it is NOT interchangeable with WorkMinutes.
func ClippedWorkMinutes(checkIn, lastActivity time.Time, win *ShiftWindow) int {
	if win == nil {
		return 0
	}

	start := checkIn
	if start.Before(win.WorkStart) {
		start = win.WorkStart
	}
	end := lastActivity
	if end.After(win.WorkEnd) {
		end = win.WorkEnd
	}

	if !end.After(start) {
		return 0
	}

	return wholeMinutes(end.Sub(start)) - lunchOverlapMinutes(start, end, win)
}

// lunchOverlapMinutes implements the four-branch lunch subtraction rule:
// full span when the session covers the whole lunch window, the elapsed
// lunch portion when the session ends mid-lunch, the remaining lunch
// portion when it starts mid-lunch, and nothing otherwise.
func lunchOverlapMinutes(start, end time.Time, win *ShiftWindow) int {
	if win == nil || !win.Lunch {
		return 0
	}

	switch {
	case !start.After(win.LunchStart) && !end.Before(win.LunchEnd):
		return wholeMinutes(win.LunchEnd.Sub(win.LunchStart))
	case !start.After(win.LunchStart) && end.After(win.LunchStart) && end.Before(win.LunchEnd):
		return wholeMinutes(end.Sub(win.LunchStart))
	case start.After(win.LunchStart) && start.Before(win.LunchEnd) && !end.Before(win.LunchEnd):
		return wholeMinutes(win.LunchEnd.Sub(start))
	}
	return 0
}

func wholeMinutes(d time.Duration) int {
	return int(math.Floor(d.Minutes()))
}
