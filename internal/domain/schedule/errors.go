package schedule

import "errors"

var (
	ErrScheduleNotFound   = errors.New("no schedule found for this weekday")
	ErrIncompleteSchedule = errors.New("schedule must cover all seven weekdays")
)
