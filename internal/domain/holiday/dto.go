package holiday

import (
	"github.com/qrworks/qrworks-backend-go/internal/pkg/validator"
)

// CreateEntryRequest declares one paid holiday with its allotted work.
type CreateEntryRequest struct {
	Date                 string `json:"date"`
	AllottedMinutes      int    `json:"allotted_minutes"`
	ExtraOvertimeMinutes int    `json:"extra_overtime_minutes"`
	Description          string `json:"description"`
}

func (r CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
	}

	if r.AllottedMinutes <= 0 {
		errs = append(errs, validator.ValidationError{Field: "allotted_minutes", Message: "Allotted minutes must be positive"})
	}
	if r.ExtraOvertimeMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "extra_overtime_minutes", Message: "Extra overtime minutes must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EntryResponse mirrors a stored entry.
type EntryResponse struct {
	ID                   string `json:"id"`
	Date                 string `json:"date"`
	AllottedMinutes      int    `json:"allotted_minutes"`
	ExtraOvertimeMinutes int    `json:"extra_overtime_minutes"`
	Description          string `json:"description"`
	IsExceeded           bool   `json:"is_exceeded"`
}
