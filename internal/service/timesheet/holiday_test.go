package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
	"github.com/qrworks/qrworks-backend-go/internal/domain/holiday"
)

func TestCheckInDates(t *testing.T) {
	events := []attendance.Event{
		punch("u1", attendance.KindCheckIn, monday(9, 0)),
		punch("u1", attendance.KindCheckOut, monday(18, 0)),
		punch("u1", attendance.KindCheckIn, sunday(10, 0)),
		overtimePunch("u1", sunday(14, 0), nil),
	}

	dates := CheckInDates(events)
	assert.Len(t, dates, 2)
	assert.True(t, dates["2025-03-10"])
	assert.True(t, dates["2025-03-09"])
}

func TestAggregateHolidayWork(t *testing.T) {
	t.Run("allotment over the cap splits into regular and exceeded", func(t *testing.T) {
		checkIns := map[string]bool{"2025-03-09": true}
		entries := []holiday.WorkEntry{holidayEntry(sunday(0, 0), 600, 30)}

		got := AggregateHolidayWork(checkIns, entries)
		assert.Equal(t, 480, got.RegularMinutes)
		assert.Equal(t, 120, got.ExceededMinutes)
		assert.Equal(t, 30, got.ExtraMinutes)
		assert.Equal(t, 630, got.TotalMinutes)
	})

	t.Run("allotment at the cap is all regular", func(t *testing.T) {
		checkIns := map[string]bool{"2025-03-09": true}
		entries := []holiday.WorkEntry{holidayEntry(sunday(0, 0), 480, 0)}

		got := AggregateHolidayWork(checkIns, entries)
		assert.Equal(t, 480, got.RegularMinutes)
		assert.Equal(t, 0, got.ExceededMinutes)
		assert.Equal(t, 480, got.TotalMinutes)
	})

	t.Run("entry without a check-in contributes nothing", func(t *testing.T) {
		entries := []holiday.WorkEntry{holidayEntry(sunday(0, 0), 600, 30)}

		got := AggregateHolidayWork(map[string]bool{}, entries)
		assert.Equal(t, HolidaySummary{}, got)
	})

	t.Run("multiple entries accumulate per bucket", func(t *testing.T) {
		checkIns := map[string]bool{
			"2025-03-09": true,
			"2025-03-15": true,
		}
		entries := []holiday.WorkEntry{
			holidayEntry(sunday(0, 0), 600, 30),
			holidayEntry(at(2025, 3, 15, 0, 0), 300, 0),
		}

		got := AggregateHolidayWork(checkIns, entries)
		assert.Equal(t, 780, got.RegularMinutes)
		assert.Equal(t, 120, got.ExceededMinutes)
		assert.Equal(t, 30, got.ExtraMinutes)
		assert.Equal(t, 930, got.TotalMinutes)
	})
}
