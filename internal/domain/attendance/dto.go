package attendance

import (
	"time"

	"github.com/qrworks/qrworks-backend-go/internal/pkg/validator"
)

// PunchRequest is the payload the QR kiosk posts after scanning a code.
// Timestamp defaults to the server clock when absent; the kiosk sends its
// own instant so offline punches keep their original time.
type PunchRequest struct {
	Kind             string  `json:"kind"`
	Timestamp        *string `json:"timestamp,omitempty"`
	Location         *string `json:"location,omitempty"`
	NightShiftAnchor *string `json:"night_shift_anchor,omitempty"`
	Reason           *string `json:"reason,omitempty"`
}

func (r PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Kind) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "Kind is required"})
	} else if !validator.IsInSlice(r.Kind, EventKindValues) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "Kind must be one of CHECK_IN, CHECK_OUT, OVERTIME_END"})
	}

	if r.Timestamp != nil && *r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(*r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{Field: "timestamp", Message: "Timestamp must be a valid ISO8601 datetime"})
		}
	}

	if r.NightShiftAnchor != nil && *r.NightShiftAnchor != "" {
		if _, ok := validator.IsValidDateTime(*r.NightShiftAnchor); !ok {
			errs = append(errs, validator.ValidationError{Field: "night_shift_anchor", Message: "Night shift anchor must be a valid ISO8601 datetime"})
		}
		if r.Kind != string(KindOvertimeEnd) {
			errs = append(errs, validator.ValidationError{Field: "night_shift_anchor", Message: "Night shift anchor is only allowed on OVERTIME_END punches"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PunchFilter filters a user's own punch listing.
type PunchFilter struct {
	StartDate *string
	EndDate   *string
	Kind      *string
}

func (f PunchFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be in YYYY-MM-DD format"})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be in YYYY-MM-DD format"})
		}
	}
	if f.Kind != nil && *f.Kind != "" && !validator.IsInSlice(*f.Kind, EventKindValues) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "Kind must be one of CHECK_IN, CHECK_OUT, OVERTIME_END"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PunchResponse echoes a stored punch back to the caller.
type PunchResponse struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	Kind             string  `json:"kind"`
	Timestamp        string  `json:"timestamp"`
	Location         *string `json:"location,omitempty"`
	NightShiftAnchor *string `json:"night_shift_anchor,omitempty"`
	Reason           *string `json:"reason,omitempty"`
}

// DayStatusResponse is the daily attendance card. Minute fields are nil
// until the day has a terminal punch; formatted strings are derived from
// the raw minutes, clamped to zero for display.
type DayStatusResponse struct {
	Date                  string  `json:"date"`
	IsLate                bool    `json:"is_late"`
	LateMinutes           int     `json:"late_minutes"`
	IsEarlyLeave          bool    `json:"is_early_leave"`
	EarlyLeaveMinutes     int     `json:"early_leave_minutes"`
	IsHoliday             bool    `json:"is_holiday"`
	IsNonWorkingDay       bool    `json:"is_non_working_day"`
	RegularWorkMinutes    *int    `json:"regular_work_minutes,omitempty"`
	RegularWorkFormatted  *string `json:"regular_work_formatted,omitempty"`
	OvertimeMinutes       *int    `json:"overtime_minutes,omitempty"`
	OvertimeFormatted     *string `json:"overtime_formatted,omitempty"`
	LunchOvertimeMinutes  int     `json:"lunch_overtime_minutes"`
	TotalWorkMinutes      *int    `json:"total_work_minutes,omitempty"`
	TotalWorkFormatted    *string `json:"total_work_formatted,omitempty"`
	HolidayWorkMinutes    *int    `json:"holiday_work_minutes,omitempty"`
	IsHolidayWorkExceeded bool    `json:"is_holiday_work_exceeded"`
}

// MonthlySummaryResponse is the per-employee monthly card.
type MonthlySummaryResponse struct {
	Year                     int    `json:"year"`
	Month                    int    `json:"month"`
	RegularWorkMinutes       int    `json:"regular_work_minutes"`
	OvertimeMinutes          int    `json:"overtime_minutes"`
	HolidayRegularMinutes    int    `json:"holiday_regular_minutes"`
	HolidayExceededMinutes   int    `json:"holiday_exceeded_minutes"`
	HolidayExtraMinutes      int    `json:"holiday_extra_minutes"`
	TotalMinutes             int    `json:"total_minutes"`
	TotalFormatted           string `json:"total_formatted"`
	RegularWorkFormatted     string `json:"regular_work_formatted"`
	OvertimeFormatted        string `json:"overtime_formatted"`
	HolidayRegularFormatted  string `json:"holiday_regular_formatted"`
	HolidayExceededFormatted string `json:"holiday_exceeded_formatted"`
	HolidayExtraFormatted    string `json:"holiday_extra_formatted"`
}

// DateOf returns t's local calendar date in YYYY-MM-DD form.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}
