package report

import (
	"github.com/qrworks/qrworks-backend-go/internal/pkg/validator"
)

// MonthlyAttendanceReportRequest selects the report period.
type MonthlyAttendanceReportRequest struct {
	Month int
	Year  int
}

func (r MonthlyAttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "Year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeMonthlyRow is one line of the cross-employee report table. Its
// totals are produced by the same fold that builds the single-employee
// monthly card, so the two views can never disagree.
type EmployeeMonthlyRow struct {
	UserID                 string `json:"user_id"`
	FullName               string `json:"full_name"`
	RegularWorkMinutes     int    `json:"regular_work_minutes"`
	OvertimeMinutes        int    `json:"overtime_minutes"`
	HolidayRegularMinutes  int    `json:"holiday_regular_minutes"`
	HolidayExceededMinutes int    `json:"holiday_exceeded_minutes"`
	HolidayExtraMinutes    int    `json:"holiday_extra_minutes"`
	TotalMinutes           int    `json:"total_minutes"`
	TotalFormatted         string `json:"total_formatted"`
}

// MonthlyAttendanceReport is the full report payload.
type MonthlyAttendanceReport struct {
	PeriodMonth int                  `json:"period_month"`
	PeriodYear  int                  `json:"period_year"`
	PeriodStart string               `json:"period_start"`
	PeriodEnd   string               `json:"period_end"`
	GeneratedAt string               `json:"generated_at"`
	Employees   []EmployeeMonthlyRow `json:"employees"`
}
