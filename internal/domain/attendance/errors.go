package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
	ErrNotCheckedIn     = errors.New("you have not checked in yet")
	ErrInvalidEventKind = errors.New("invalid punch kind")

	// General errors
	ErrEventNotFound = errors.New("attendance event not found")
)
