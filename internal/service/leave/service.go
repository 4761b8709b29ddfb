package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/qrworks/qrworks-backend-go/internal/domain/leave"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	db          *database.DB
	requestRepo leave.RequestRepository
	location    *time.Location
}

func NewLeaveService(db *database.DB, requestRepo leave.RequestRepository, location *time.Location) leave.LeaveService {
	return &LeaveServiceImpl{
		db:          db,
		requestRepo: requestRepo,
		location:    location,
	}
}

// CreateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, s.location)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, s.location)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if endDate.Before(startDate) {
		return leave.RequestResponse{}, leave.ErrInvalidDateRange
	}

	created, err := s.requestRepo.Create(ctx, leave.Request{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toRequestResponse(created), nil
}

// GetMyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyRequests(ctx context.Context) ([]leave.RequestResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toRequestResponses(requests), nil
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, status *leave.RequestStatus) ([]leave.RequestResponse, error) {
	requests, err := s.requestRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toRequestResponses(requests), nil
}

// ApproveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveRequest(ctx context.Context, id string) (leave.RequestResponse, error) {
	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrRequestAlreadyProcessed
	}

	now := time.Now().In(s.location)
	request.Status = leave.StatusApproved
	request.ApprovedBy = &adminID
	request.ApprovedAt = &now

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to approve leave request: %w", err)
	}

	return toRequestResponse(request), nil
}

// RejectRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectRequest(ctx context.Context, req leave.RejectRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	request, err := s.requestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrRequestAlreadyProcessed
	}

	now := time.Now().In(s.location)
	request.Status = leave.StatusRejected
	request.ApprovedBy = &adminID
	request.ApprovedAt = &now
	request.RejectionReason = &req.Reason

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to reject leave request: %w", err)
	}

	return toRequestResponse(request), nil
}

func toRequestResponse(request leave.Request) leave.RequestResponse {
	resp := leave.RequestResponse{
		ID:              request.ID,
		UserID:          request.UserID,
		StartDate:       request.StartDate.Format("2006-01-02"),
		EndDate:         request.EndDate.Format("2006-01-02"),
		Reason:          request.Reason,
		Status:          string(request.Status),
		ApprovedBy:      request.ApprovedBy,
		RejectionReason: request.RejectionReason,
		CreatedAt:       request.CreatedAt.Format(time.RFC3339),
	}
	if request.ApprovedAt != nil {
		approvedAt := request.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	if request.UserName != nil {
		resp.UserName = *request.UserName
	}
	return resp
}

func toRequestResponses(requests []leave.Request) []leave.RequestResponse {
	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toRequestResponse(request))
	}
	return responses
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id not found in token")
	}

	return userID, nil
}
