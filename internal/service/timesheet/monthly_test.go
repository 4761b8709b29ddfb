package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
	"github.com/qrworks/qrworks-backend-go/internal/domain/holiday"
)

// marchWeek builds a user's events across a working Monday, a Tuesday with
// evening overtime, a Sunday session and a holiday Wednesday.
func marchWeek(userID string) []attendance.Event {
	return []attendance.Event{
		// Monday 3/10: plain 9-to-6.
		punch(userID, attendance.KindCheckIn, monday(9, 0)),
		punch(userID, attendance.KindCheckOut, monday(18, 0)),
		// Tuesday 3/11: stays until 20:00.
		punch(userID, attendance.KindCheckIn, at(2025, 3, 11, 9, 0)),
		overtimePunch(userID, at(2025, 3, 11, 20, 0), nil),
		// Sunday 3/9: four hours off-schedule.
		punch(userID, attendance.KindCheckIn, sunday(10, 0)),
		overtimePunch(userID, sunday(14, 0), nil),
		// Wednesday 3/12: designated holiday work.
		punch(userID, attendance.KindCheckIn, at(2025, 3, 12, 9, 0)),
		punch(userID, attendance.KindCheckOut, at(2025, 3, 12, 18, 0)),
	}
}

func marchHolidays() []holiday.WorkEntry {
	return []holiday.WorkEntry{holidayEntry(at(2025, 3, 12, 0, 0), 600, 30)}
}

func TestAggregateMonth(t *testing.T) {
	schedules := weekSchedules()

	totals, err := AggregateMonth(marchWeek("u1"), schedules, marchHolidays())
	require.NoError(t, err)

	// Monday 480 + Tuesday 480; the holiday Wednesday is excluded.
	assert.Equal(t, 960, totals.RegularWorkMinutes)
	// Tuesday 120 after-work + Sunday 240 off-schedule.
	assert.Equal(t, 360, totals.OvertimeMinutes)
	assert.Equal(t, 480, totals.HolidayRegularMinutes)
	assert.Equal(t, 120, totals.HolidayExceededMinutes)
	assert.Equal(t, 30, totals.HolidayExtraMinutes)
	assert.Equal(t, 1950, totals.TotalMinutes)
}

func TestAggregateMonthSkipsHolidayWithoutCheckIn(t *testing.T) {
	events := []attendance.Event{
		punch("u1", attendance.KindCheckIn, monday(9, 0)),
		punch("u1", attendance.KindCheckOut, monday(18, 0)),
	}

	totals, err := AggregateMonth(events, weekSchedules(), marchHolidays())
	require.NoError(t, err)

	assert.Equal(t, 480, totals.RegularWorkMinutes)
	assert.Equal(t, 0, totals.HolidayRegularMinutes)
	assert.Equal(t, 0, totals.HolidayExceededMinutes)
	assert.Equal(t, 0, totals.HolidayExtraMinutes)
	assert.Equal(t, 480, totals.TotalMinutes)
}

func TestAggregateByUser(t *testing.T) {
	schedules := weekSchedules()
	holidays := marchHolidays()

	u2Events := []attendance.Event{
		punch("u2", attendance.KindCheckIn, monday(9, 30)),
		punch("u2", attendance.KindCheckOut, monday(18, 0)),
	}
	all := append(marchWeek("u1"), u2Events...)

	userIDs, totals, err := AggregateByUser(all, schedules, holidays)
	require.NoError(t, err)

	assert.Equal(t, []string{"u1", "u2"}, userIDs)
	assert.Equal(t, 450, totals["u2"].RegularWorkMinutes)

	// The report row must match the user's own monthly card exactly.
	card, err := AggregateMonth(marchWeek("u1"), schedules, holidays)
	require.NoError(t, err)
	assert.Equal(t, card, totals["u1"])
}
