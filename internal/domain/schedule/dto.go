package schedule

import (
	"fmt"

	"github.com/qrworks/qrworks-backend-go/internal/pkg/clock"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/validator"
)

// DayScheduleInput is one weekday row of an UpdateScheduleRequest.
type DayScheduleInput struct {
	Weekday      int    `json:"weekday"`
	IsWorkingDay bool   `json:"is_working_day"`
	WorkStart    string `json:"work_start"`
	WorkEnd      string `json:"work_end"`
	LunchStart   string `json:"lunch_start"`
	LunchEnd     string `json:"lunch_end"`
}

// UpdateScheduleRequest replaces the whole week. A malformed time string
// fails the save; it is never silently defaulted.
type UpdateScheduleRequest struct {
	Days []DayScheduleInput `json:"days"`
}

func (r UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Days) != 7 {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "Exactly seven weekday rows are required"})
		return errs
	}

	seen := make(map[int]bool, 7)
	for i, day := range r.Days {
		field := fmt.Sprintf("days[%d]", i)

		if day.Weekday < 0 || day.Weekday > 6 {
			errs = append(errs, validator.ValidationError{Field: field + ".weekday", Message: "Weekday must be between 0 (Sunday) and 6 (Saturday)"})
			continue
		}
		if seen[day.Weekday] {
			errs = append(errs, validator.ValidationError{Field: field + ".weekday", Message: "Duplicate weekday"})
			continue
		}
		seen[day.Weekday] = true

		if !day.IsWorkingDay {
			continue
		}

		start, err := clock.MinuteOfDay(day.WorkStart)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: field + ".work_start", Message: "Work start must be in HH:MM format"})
		}
		end, err2 := clock.MinuteOfDay(day.WorkEnd)
		if err2 != nil {
			errs = append(errs, validator.ValidationError{Field: field + ".work_end", Message: "Work end must be in HH:MM format"})
		}
		if err == nil && err2 == nil && start >= end {
			errs = append(errs, validator.ValidationError{Field: field + ".work_end", Message: "Work end must be after work start"})
		}

		lunchStart, lunchErr := clock.MinuteOfDay(day.LunchStart)
		if day.LunchStart != "" && lunchErr != nil {
			errs = append(errs, validator.ValidationError{Field: field + ".lunch_start", Message: "Lunch start must be in HH:MM format"})
		}
		lunchEnd, lunchErr2 := clock.MinuteOfDay(day.LunchEnd)
		if day.LunchEnd != "" && lunchErr2 != nil {
			errs = append(errs, validator.ValidationError{Field: field + ".lunch_end", Message: "Lunch end must be in HH:MM format"})
		}
		if lunchErr == nil && lunchErr2 == nil && lunchStart > lunchEnd {
			errs = append(errs, validator.ValidationError{Field: field + ".lunch_end", Message: "Lunch end must not be before lunch start"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayScheduleResponse mirrors a stored weekday row.
type DayScheduleResponse struct {
	Weekday      int    `json:"weekday"`
	IsWorkingDay bool   `json:"is_working_day"`
	WorkStart    string `json:"work_start"`
	WorkEnd      string `json:"work_end"`
	LunchStart   string `json:"lunch_start"`
	LunchEnd     string `json:"lunch_end"`
}
