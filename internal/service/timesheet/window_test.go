package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrworks/qrworks-backend-go/internal/domain/schedule"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/clock"
)

func TestHasLunch(t *testing.T) {
	tests := []struct {
		name       string
		lunchStart string
		lunchEnd   string
		want       bool
	}{
		{"configured lunch", "12:00", "13:00", true},
		{"both zero sentinel", "00:00", "00:00", false},
		{"empty start", "", "13:00", false},
		{"empty end", "12:00", "", false},
		{"both empty", "", "", false},
		{"only start zero", "00:00", "13:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := schedule.DaySchedule{LunchStart: tt.lunchStart, LunchEnd: tt.lunchEnd}
			assert.Equal(t, tt.want, HasLunch(day))
		})
	}
}

func TestResolveShiftWindow(t *testing.T) {
	t.Run("working day with lunch", func(t *testing.T) {
		win, err := ResolveShiftWindow(weekSchedules()[time.Monday], monday(0, 0))
		require.NoError(t, err)
		require.NotNil(t, win)

		assert.Equal(t, monday(9, 0), win.WorkStart)
		assert.Equal(t, monday(18, 0), win.WorkEnd)
		assert.True(t, win.Lunch)
		assert.Equal(t, monday(12, 0), win.LunchStart)
		assert.Equal(t, monday(13, 0), win.LunchEnd)
		assert.Equal(t, seoul, win.WorkStart.Location())
	})

	t.Run("non-working day returns nil", func(t *testing.T) {
		win, err := ResolveShiftWindow(weekSchedules()[time.Sunday], sunday(0, 0))
		require.NoError(t, err)
		assert.Nil(t, win)
	})

	t.Run("no lunch configured", func(t *testing.T) {
		day := schedule.DaySchedule{
			Weekday:      1,
			IsWorkingDay: true,
			WorkStart:    "09:00",
			WorkEnd:      "18:00",
			LunchStart:   "00:00",
			LunchEnd:     "00:00",
		}
		win, err := ResolveShiftWindow(day, monday(0, 0))
		require.NoError(t, err)
		require.NotNil(t, win)
		assert.False(t, win.Lunch)
	})

	t.Run("malformed work start", func(t *testing.T) {
		day := schedule.DaySchedule{
			Weekday:      1,
			IsWorkingDay: true,
			WorkStart:    "9am",
			WorkEnd:      "18:00",
		}
		_, err := ResolveShiftWindow(day, monday(0, 0))
		assert.ErrorIs(t, err, clock.ErrInvalidTimeFormat)
	})

	t.Run("anchored to the date's location", func(t *testing.T) {
		utcDate := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		win, err := ResolveShiftWindow(weekSchedules()[time.Monday], utcDate)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, win.WorkStart.Location())
		assert.Equal(t, 9, win.WorkStart.Hour())
	})
}
