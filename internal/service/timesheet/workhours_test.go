package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkMinutes(t *testing.T) {
	win := mondayWindow()

	tests := []struct {
		name    string
		inHour  int
		inMin   int
		outHour int
		outMin  int
		want    int
	}{
		{"full day minus lunch", 9, 0, 18, 0, 480},
		{"checkout mid-lunch", 9, 0, 12, 30, 180},
		{"checkin mid-lunch", 12, 30, 18, 0, 300},
		{"morning only, before lunch", 9, 0, 11, 0, 120},
		{"afternoon only, after lunch", 14, 0, 18, 0, 240},
		{"span past work end still counts", 9, 0, 20, 0, 600},
		{"inverted order goes negative", 18, 0, 9, 0, -540},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorkMinutes(monday(tt.inHour, tt.inMin), monday(tt.outHour, tt.outMin), win)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("nil window skips lunch subtraction", func(t *testing.T) {
		assert.Equal(t, 240, WorkMinutes(sunday(10, 0), sunday(14, 0), nil))
	})
}

func TestClippedWorkMinutes(t *testing.T) {
	win := mondayWindow()

	tests := []struct {
		name    string
		inHour  int
		inMin   int
		outHour int
		outMin  int
		want    int
	}{
		{"full day minus lunch", 9, 0, 18, 0, 480},
		{"early arrival clipped to work start", 8, 0, 18, 0, 480},
		{"late departure clipped to work end", 9, 0, 21, 30, 480},
		{"clipped on both sides", 7, 45, 19, 10, 480},
		{"checkout mid-lunch", 9, 0, 12, 30, 180},
		{"session entirely after work end", 19, 0, 21, 0, 0},
		{"inverted order clamps to zero", 18, 0, 9, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClippedWorkMinutes(monday(tt.inHour, tt.inMin), monday(tt.outHour, tt.outMin), win)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("nil window yields zero", func(t *testing.T) {
		assert.Equal(t, 0, ClippedWorkMinutes(sunday(10, 0), sunday(14, 0), nil))
	})
}

func TestLunchOverlapMinutes(t *testing.T) {
	win := mondayWindow()

	tests := []struct {
		name      string
		startHour int
		startMin  int
		endHour   int
		endMin    int
		want      int
	}{
		{"covers whole lunch", 9, 0, 18, 0, 60},
		{"ends mid-lunch", 9, 0, 12, 30, 30},
		{"starts mid-lunch", 12, 45, 18, 0, 15},
		{"ends exactly at lunch start", 9, 0, 12, 0, 0},
		{"starts exactly at lunch end", 13, 0, 18, 0, 0},
		{"entirely before lunch", 9, 0, 11, 0, 0},
		{"entirely after lunch", 14, 0, 18, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lunchOverlapMinutes(monday(tt.startHour, tt.startMin), monday(tt.endHour, tt.endMin), win)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("no lunch configured", func(t *testing.T) {
		noLunch := *win
		noLunch.Lunch = false
		assert.Equal(t, 0, lunchOverlapMinutes(monday(9, 0), monday(18, 0), &noLunch))
	})
}
