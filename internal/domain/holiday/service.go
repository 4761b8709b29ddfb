package holiday

import (
	"context"
)

// HolidayService defines business logic for holiday work entries.
type HolidayService interface {
	// CreateEntry declares a holiday work entry (admin only)
	CreateEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)

	// ListEntries retrieves entries for a calendar month
	ListEntries(ctx context.Context, year, month int) ([]EntryResponse, error)

	// DeleteEntry removes an entry (admin only)
	DeleteEntry(ctx context.Context, id string) error
}
