package clock

import (
	"errors"
	"testing"
	"time"
)

func TestMinuteOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"0:00", 0},
		{"9:05", 545},
		{"09:05", 545},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := MinuteOfDay(c.input)
		if err != nil {
			t.Errorf("MinuteOfDay(%q) returned error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("MinuteOfDay(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestMinuteOfDay_Invalid(t *testing.T) {
	invalid := []string{"", "9:5", "24:00", "12:60", "nine:00", "12-30", "123:00"}
	for _, s := range invalid {
		if _, err := MinuteOfDay(s); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("MinuteOfDay(%q) = %v, want ErrInvalidTimeFormat", s, err)
		}
	}
}

func TestMinutesBetween(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"09:00", "18:00", 540},
		{"12:00", "13:00", 60},
		{"18:00", "09:00", -540},
		{"10:30", "10:30", 0},
	}
	for _, c := range cases {
		got, err := MinutesBetween(c.a, c.b)
		if err != nil {
			t.Fatalf("MinutesBetween(%q, %q) returned error: %v", c.a, c.b, err)
		}
		if got != c.want {
			t.Errorf("MinutesBetween(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestClockMinute(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Seoul")
	ts := time.Date(2025, 3, 10, 9, 30, 45, 0, loc)
	if got := ClockMinute(ts); got != 570 {
		t.Errorf("ClockMinute = %d, want 570", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{-30, "0:00"},
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{125, "2:05"},
		{481, "8:01"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.minutes); got != c.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestFormatDuration_RoundTrip(t *testing.T) {
	for _, m := range []int{0, 59, 60, 125, 481} {
		parsed, err := ParseDuration(FormatDuration(m))
		if err != nil {
			t.Fatalf("ParseDuration(FormatDuration(%d)) returned error: %v", m, err)
		}
		if parsed != m {
			t.Errorf("round trip of %d = %d", m, parsed)
		}
	}
}

func TestFormatHoursKo(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0분"},
		{30, "30분"},
		{480, "8시간"},
		{510, "8시간 30분"},
	}
	for _, c := range cases {
		if got := FormatHoursKo(c.minutes); got != c.want {
			t.Errorf("FormatHoursKo(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}
