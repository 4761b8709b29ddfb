package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
)

func TestComputeOvertime(t *testing.T) {
	win := mondayWindow()

	t.Run("non-working day counts the whole session", func(t *testing.T) {
		checkIn := sunday(10, 0)
		end := sunday(14, 0)
		events := []attendance.Event{
			punch("u1", attendance.KindCheckIn, checkIn),
			overtimePunch("u1", end, nil),
		}

		got := ComputeOvertime(events, checkIn, end, nil, true)
		assert.Equal(t, 240, got.TotalMinutes)
		assert.Equal(t, 0, got.LunchMinutes)
	})

	t.Run("night-shift anchor overrides the schedule", func(t *testing.T) {
		checkIn := monday(9, 0)
		anchor := monday(19, 0)
		end := monday(21, 30)
		events := []attendance.Event{
			punch("u1", attendance.KindCheckIn, checkIn),
			punch("u1", attendance.KindCheckOut, monday(18, 0)),
			overtimePunch("u1", end, &anchor),
		}

		got := ComputeOvertime(events, checkIn, end, win, false)
		assert.Equal(t, 150, got.TotalMinutes)
		assert.Equal(t, 0, got.LunchMinutes)
	})

	t.Run("check-in after work end makes the session off-schedule", func(t *testing.T) {
		checkIn := monday(19, 0)
		end := monday(21, 0)
		events := []attendance.Event{
			punch("u1", attendance.KindCheckIn, checkIn),
			overtimePunch("u1", end, nil),
		}

		got := ComputeOvertime(events, checkIn, end, win, false)
		assert.Equal(t, 120, got.TotalMinutes)
	})

	t.Run("after-work overtime", func(t *testing.T) {
		checkIn := monday(9, 0)
		end := monday(20, 0)
		events := []attendance.Event{
			punch("u1", attendance.KindCheckIn, checkIn),
			overtimePunch("u1", end, nil),
		}

		got := ComputeOvertime(events, checkIn, end, win, false)
		assert.Equal(t, 120, got.TotalMinutes)
		assert.Equal(t, 0, got.LunchMinutes)
	})

	t.Run("lunch-window overtime counts in both buckets", func(t *testing.T) {
		checkIn := monday(9, 0)
		end := monday(12, 45)
		events := []attendance.Event{
			punch("u1", attendance.KindCheckIn, checkIn),
			overtimePunch("u1", end, nil),
		}

		got := ComputeOvertime(events, checkIn, end, win, false)
		assert.Equal(t, 45, got.TotalMinutes)
		assert.Equal(t, 45, got.LunchMinutes)
	})

	t.Run("before-work overtime runs from check-in", func(t *testing.T) {
		checkIn := monday(7, 0)
		end := monday(8, 30)
		events := []attendance.Event{
			punch("u1", attendance.KindCheckIn, checkIn),
			overtimePunch("u1", end, nil),
		}

		got := ComputeOvertime(events, checkIn, end, win, false)
		assert.Equal(t, 90, got.TotalMinutes)
	})

	t.Run("multiple punches accumulate", func(t *testing.T) {
		checkIn := monday(9, 0)
		events := []attendance.Event{
			punch("u1", attendance.KindCheckIn, checkIn),
			overtimePunch("u1", monday(12, 30), nil),
			overtimePunch("u1", monday(19, 0), nil),
		}

		got := ComputeOvertime(events, checkIn, monday(19, 0), win, false)
		assert.Equal(t, 90, got.TotalMinutes)
		assert.Equal(t, 30, got.LunchMinutes)
	})

	t.Run("punch inside the schedule yields nothing", func(t *testing.T) {
		checkIn := monday(9, 0)
		events := []attendance.Event{
			punch("u1", attendance.KindCheckIn, checkIn),
			overtimePunch("u1", monday(15, 0), nil),
		}

		got := ComputeOvertime(events, checkIn, monday(15, 0), win, false)
		assert.Equal(t, 0, got.TotalMinutes)
	})

	t.Run("non-overtime punches are ignored", func(t *testing.T) {
		checkIn := monday(9, 0)
		events := []attendance.Event{
			punch("u1", attendance.KindCheckIn, checkIn),
			punch("u1", attendance.KindCheckOut, monday(20, 0)),
		}

		got := ComputeOvertime(events, checkIn, monday(20, 0), win, false)
		assert.Equal(t, 0, got.TotalMinutes)
	})
}
