package attendance

import (
	"context"
	"time"
)

// EventRepository defines data access for punch events. Events are
// append-only; there is no update path.
type EventRepository interface {
	// Create stores a new punch event
	Create(ctx context.Context, event Event) (Event, error)

	// ListByUserAndRange retrieves a user's events with timestamps in
	// [from, to), ordered by timestamp ascending
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]Event, error)

	// ListByRange retrieves all users' events in [from, to), ordered by
	// user then timestamp. Used by the cross-employee report.
	ListByRange(ctx context.Context, from, to time.Time) ([]Event, error)

	// HasEventOfKind reports whether the user already has a punch of the
	// given kind on the local calendar date (YYYY-MM-DD). Used to prevent
	// double check-in and as the idempotency guard of the midnight
	// auto-checkout job.
	HasEventOfKind(ctx context.Context, userID string, dateLocal string, kind EventKind) (bool, error)

	// ListOpenCheckIns retrieves check-in events on the local calendar date
	// that have no matching check-out yet
	ListOpenCheckIns(ctx context.Context, dateLocal string) ([]Event, error)
}
