package response

import (
	"errors"
	"net/http"

	"github.com/qrworks/qrworks-backend-go/internal/domain/attendance"
	"github.com/qrworks/qrworks-backend-go/internal/domain/auth"
	"github.com/qrworks/qrworks-backend-go/internal/domain/holiday"
	"github.com/qrworks/qrworks-backend-go/internal/domain/leave"
	"github.com/qrworks/qrworks-backend-go/internal/domain/schedule"
	"github.com/qrworks/qrworks-backend-go/internal/domain/user"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/clock"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No check-in recorded today")
	case errors.Is(err, attendance.ErrInvalidEventKind):
		BadRequest(w, "Invalid punch kind", nil)
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not configured")
	case errors.Is(err, schedule.ErrIncompleteSchedule):
		BadRequest(w, "Schedule must cover all seven weekdays", nil)
	case errors.Is(err, clock.ErrInvalidTimeFormat):
		BadRequest(w, "Time must be in HH:MM format", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrEntryNotFound):
		NotFound(w, "Holiday work entry not found")
	case errors.Is(err, holiday.ErrDuplicateDate):
		Conflict(w, "A holiday work entry already exists for this date")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Leave end date must not be before start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
