package report

import (
	"context"
)

// ReportService defines the cross-employee reporting surface.
type ReportService interface {
	// GenerateMonthlyAttendanceReport builds one row per employee for the
	// requested month (admin only)
	GenerateMonthlyAttendanceReport(ctx context.Context, req MonthlyAttendanceReportRequest) (MonthlyAttendanceReport, error)
}
