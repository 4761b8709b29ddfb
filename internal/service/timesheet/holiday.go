package timesheet

import (
	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
	"github.com/qrworks/qrworks-backend-go/internal/domain/holiday"
)

// StatutoryHolidayMinutes is the 8-hour threshold that splits allotted
// holiday work into regular and exceeded buckets.
const StatutoryHolidayMinutes = 480

// HolidaySummary aggregates an employee's holiday work over a period.
type HolidaySummary struct {
	TotalMinutes    int
	RegularMinutes  int
	ExceededMinutes int
	ExtraMinutes    int
}

// CheckInDates collects the distinct local calendar dates on which the
// events contain a check-in.
func CheckInDates(events []attendance.Event) map[string]bool {
	dates := make(map[string]bool)
	for _, ev := range events {
		if ev.Kind == attendance.KindCheckIn {
			dates[attendance.DateOf(ev.Timestamp)] = true
		}
	}
	return dates
}

// AggregateHolidayWork sums holiday work for the entries whose date the
// employee actually checked in. Allotted minutes up to 480 count as
// regular; the remainder counts as exceeded. Extra minutes are
// manually-justified overtime and are never subject to the cap.
func AggregateHolidayWork(checkInDates map[string]bool, entries []holiday.WorkEntry) HolidaySummary {
	var s HolidaySummary
	for _, entry := range entries {
		if !checkInDates[entry.Date.Format("2006-01-02")] {
			continue
		}

		if entry.AllottedMinutes <= StatutoryHolidayMinutes {
			s.RegularMinutes += entry.AllottedMinutes
		} else {
			s.RegularMinutes += StatutoryHolidayMinutes
			s.ExceededMinutes += entry.AllottedMinutes - StatutoryHolidayMinutes
		}
		s.ExtraMinutes += entry.ExtraOvertimeMinutes
	}

	s.TotalMinutes = s.RegularMinutes + s.ExceededMinutes + s.ExtraMinutes
	return s
}
