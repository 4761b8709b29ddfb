package clock

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat is returned when a wall-clock string does not look
// like "HH:MM". A malformed schedule time must fail configuration save, so
// this error is never swallowed.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

var hhmmRegex = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// MinuteOfDay parses a "HH:MM" wall-clock string into a minute-of-day
// integer (00:00 = 0, 23:59 = 1439).
func MinuteOfDay(s string) (int, error) {
	if !hhmmRegex.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	parts := strings.SplitN(s, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])

	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return hours*60 + minutes, nil
}

// MinutesBetween returns minuteOfDay(b) - minuteOfDay(a). The result may be
// negative when b is earlier in the day than a.
func MinutesBetween(a, b string) (int, error) {
	ma, err := MinuteOfDay(a)
	if err != nil {
		return 0, err
	}
	mb, err := MinuteOfDay(b)
	if err != nil {
		return 0, err
	}
	return mb - ma, nil
}

// ClockMinute returns the wall-clock minute of day of t in its own location.
func ClockMinute(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatDuration renders a minute count in the canonical "H:MM" form, with
// the minute part zero-padded. Zero and negative counts render as "0:00".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// ParseDuration is the inverse of FormatDuration.
func ParseDuration(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || mins > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return hours*60 + mins, nil
}

// FormatHoursKo renders a minute count in the Korean display style used by
// the attendance screens: "8시간", "30분" or "8시간 30분".
func FormatHoursKo(minutes int) string {
	if minutes <= 0 {
		return "0분"
	}

	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%d분", mins)
	case mins == 0:
		return fmt.Sprintf("%d시간", hours)
	default:
		return fmt.Sprintf("%d시간 %d분", hours, mins)
	}
}
