package leave

import (
	"context"
)

// LeaveService defines business logic for the vacation workflow.
type LeaveService interface {
	// CreateRequest opens a pending request for the authenticated user
	CreateRequest(ctx context.Context, req CreateRequest) (RequestResponse, error)

	// GetMyRequests retrieves the authenticated user's requests
	GetMyRequests(ctx context.Context) ([]RequestResponse, error)

	// ListRequests retrieves all requests (admin only)
	ListRequests(ctx context.Context, status *RequestStatus) ([]RequestResponse, error)

	// ApproveRequest approves a pending request (admin only)
	ApproveRequest(ctx context.Context, id string) (RequestResponse, error)

	// RejectRequest rejects a pending request with a reason (admin only)
	RejectRequest(ctx context.Context, req RejectRequest) (RequestResponse, error)
}
