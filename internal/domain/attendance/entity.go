package attendance

import (
	"time"
)

// EventKind tags a punch. The QR kiosk posts one of these three kinds; the
// time-accounting engine never sees anything else (strict validation at the
// ingestion boundary).
type EventKind string

const (
	KindCheckIn     EventKind = "CHECK_IN"
	KindCheckOut    EventKind = "CHECK_OUT"
	KindOvertimeEnd EventKind = "OVERTIME_END"
)

var EventKindValues = []string{
	string(KindCheckIn),
	string(KindCheckOut),
	string(KindOvertimeEnd),
}

// Event is one immutable punch. NightShiftAnchor is only ever present on
// OVERTIME_END events and marks the start of a night-shift overtime window.
type Event struct {
	ID               string
	UserID           string
	Kind             EventKind
	Timestamp        time.Time
	Location         *string
	NightShiftAnchor *time.Time
	Reason           *string
	CreatedAt        time.Time

	// DTO
	UserName *string
}
