package leave

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Request is one vacation request. Dates are inclusive calendar days.
type Request struct {
	ID              string
	UserID          string
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          RequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	UserName *string
}
