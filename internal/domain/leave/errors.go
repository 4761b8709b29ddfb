package leave

import "errors"

var (
	ErrRequestNotFound         = errors.New("leave request not found")
	ErrRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidDateRange        = errors.New("leave end date must not be before start date")
)
