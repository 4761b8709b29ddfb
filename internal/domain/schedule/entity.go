package schedule

import "time"

// DaySchedule is one weekday's work window configuration. Weekday follows
// time.Weekday numbering: 0 = Sunday .. 6 = Saturday. Times are "HH:MM"
// wall-clock strings; a lunch break is absent when both LunchStart and
// LunchEnd are "00:00" (legacy sentinel, see timesheet.HasLunch).
type DaySchedule struct {
	Weekday      int
	IsWorkingDay bool
	WorkStart    string
	WorkEnd      string
	LunchStart   string
	LunchEnd     string
	UpdatedAt    time.Time
}

// ScheduleSet is the full week keyed by weekday. The engine requires all
// seven rows; it never synthesizes defaults for a missing weekday.
type ScheduleSet map[time.Weekday]DaySchedule

// SetOf keys the stored weekday rows for engine lookup.
func SetOf(days []DaySchedule) ScheduleSet {
	set := make(ScheduleSet, len(days))
	for _, day := range days {
		set[time.Weekday(day.Weekday)] = day
	}
	return set
}
