package holiday

import "time"

// WorkEntry is an administrator-declared record of paid holiday work.
// AllottedMinutes may exceed the statutory 480; the split into regular and
// exceeded buckets happens in the time-accounting engine. Extra minutes are
// manually-justified overtime and are never capped.
type WorkEntry struct {
	ID                   string
	Date                 time.Time // calendar date, midnight in the company timezone
	AllottedMinutes      int
	ExtraOvertimeMinutes int
	Description          string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
