package timesheet

import (
	"time"

	"github.com/qrworks/qrworks-backend-go/internal/pkg/clock"
)

type LatenessResult struct {
	IsLate  bool
	Minutes int
}

type EarlyLeaveResult struct {
	IsEarlyLeave bool
	Minutes      int
}

// CheckLate compares the check-in's wall-clock time of day against the work
// start. Callers only evaluate this on working days when the check-in is not
// after the work end; an after-hours check-in starts an overtime session,
// not a late one.
func CheckLate(checkIn time.Time, win *ShiftWindow) LatenessResult {
	in := clock.ClockMinute(checkIn)
	start := clock.ClockMinute(win.WorkStart)

	if in <= start {
		return LatenessResult{}
	}
	return LatenessResult{IsLate: true, Minutes: in - start}
}

// CheckEarlyLeave compares a terminal check-out's wall-clock time of day
// against the work end. Only meaningful for CHECK_OUT punches; an
// OVERTIME_END that lands before the work end is not an early leave.
func CheckEarlyLeave(checkOut time.Time, win *ShiftWindow) EarlyLeaveResult {
	out := clock.ClockMinute(checkOut)
	end := clock.ClockMinute(win.WorkEnd)

	if out >= end {
		return EarlyLeaveResult{}
	}
	return EarlyLeaveResult{IsEarlyLeave: true, Minutes: end - out}
}
