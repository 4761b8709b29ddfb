package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckLate(t *testing.T) {
	win := mondayWindow()

	tests := []struct {
		name        string
		checkInHour int
		checkInMin  int
		wantLate    bool
		wantMinutes int
	}{
		{"on time exactly", 9, 0, false, 0},
		{"early", 8, 30, false, 0},
		{"one minute late", 9, 1, true, 1},
		{"very late", 11, 45, true, 165},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckLate(monday(tt.checkInHour, tt.checkInMin), win)
			assert.Equal(t, tt.wantLate, got.IsLate)
			assert.Equal(t, tt.wantMinutes, got.Minutes)
		})
	}
}

func TestCheckEarlyLeave(t *testing.T) {
	win := mondayWindow()

	tests := []struct {
		name         string
		checkOutHour int
		checkOutMin  int
		wantEarly    bool
		wantMinutes  int
	}{
		{"at work end", 18, 0, false, 0},
		{"after work end", 19, 15, false, 0},
		{"one minute early", 17, 59, true, 1},
		{"half day", 13, 0, true, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckEarlyLeave(monday(tt.checkOutHour, tt.checkOutMin), win)
			assert.Equal(t, tt.wantEarly, got.IsEarlyLeave)
			assert.Equal(t, tt.wantMinutes, got.Minutes)
		})
	}
}
