package holiday

import (
	"context"
	"time"
)

// WorkEntryRepository defines data access for holiday work entries. The
// dates are unique (one entry per calendar date, enforced by index).
type WorkEntryRepository interface {
	// Create stores a new entry; ErrDuplicateDate when the date is taken
	Create(ctx context.Context, entry WorkEntry) (WorkEntry, error)

	// ListByRange retrieves entries with dates in [from, to)
	ListByRange(ctx context.Context, from, to time.Time) ([]WorkEntry, error)

	// Delete removes an entry by ID
	Delete(ctx context.Context, id string) error
}
