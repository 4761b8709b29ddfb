package timesheet

import (
	"time"

	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
)

// OvertimeResult carries the day's summed overtime. LunchMinutes is the
// lunch-window portion of TotalMinutes, tracked separately because it is
// added to "total work" but some views choose not to show it under
// "overtime" — that choice belongs to the caller.
type OvertimeResult struct {
	TotalMinutes int
	LunchMinutes int
}

// ComputeOvertime classifies and sums overtime from a day's OVERTIME_END
// punches. On non-working days the whole session is overtime and no lunch
// split applies. Otherwise each punch is processed once, by priority:
//
//  1. a night-shift anchor overrides everything: minutes run from the
//     anchor to the punch;
//  2. a check-in after the scheduled work end makes the whole session
//     off-schedule: minutes run from the check-in;
//  3. otherwise the lunch-window, after-work and before-work contributions
//     each apply independently.
//
// win must be non-nil when nonWorkingDay is false.
func ComputeOvertime(events []attendance.Event, checkIn, lastActivity time.Time, win *ShiftWindow, nonWorkingDay bool) OvertimeResult {
	if nonWorkingDay {
		return OvertimeResult{TotalMinutes: WorkMinutes(checkIn, lastActivity, nil)}
	}

	var result OvertimeResult
	for _, ev := range events {
		if ev.Kind != attendance.KindOvertimeEnd {
			continue
		}
		end := ev.Timestamp

		if ev.NightShiftAnchor != nil {
			result.TotalMinutes += wholeMinutes(end.Sub(*ev.NightShiftAnchor))
			continue
		}

		if checkIn.After(win.WorkEnd) {
			result.TotalMinutes += wholeMinutes(end.Sub(checkIn))
			continue
		}

		if win.Lunch && !end.Before(win.LunchStart) && !end.After(win.LunchEnd) {
			minutes := wholeMinutes(end.Sub(win.LunchStart))
			result.TotalMinutes += minutes
			result.LunchMinutes += minutes
		}
		if end.After(win.WorkEnd) {
			result.TotalMinutes += wholeMinutes(end.Sub(win.WorkEnd))
		}
		if !end.After(win.WorkStart) {
			result.TotalMinutes += wholeMinutes(end.Sub(checkIn))
		}
	}

	return result
}
