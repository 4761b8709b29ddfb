package leave

import (
	"context"
)

// RequestRepository defines data access for leave requests.
type RequestRepository interface {
	// Create stores a new pending request
	Create(ctx context.Context, request Request) (Request, error)

	// GetByID retrieves a request by ID
	GetByID(ctx context.Context, id string) (Request, error)

	// ListByUser retrieves a user's requests, newest first
	ListByUser(ctx context.Context, userID string) ([]Request, error)

	// List retrieves all requests, optionally filtered by status
	List(ctx context.Context, status *RequestStatus) ([]Request, error)

	// Update persists approval state changes
	Update(ctx context.Context, request Request) error
}
