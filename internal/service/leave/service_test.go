package leave

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrworks/qrworks-backend-go/internal/domain/leave"
)

// fakeRequestRepository is an in-memory leave.RequestRepository.
type fakeRequestRepository struct {
	requests map[string]leave.Request
}

func newFakeRequestRepository() *fakeRequestRepository {
	return &fakeRequestRepository{requests: make(map[string]leave.Request)}
}

func (f *fakeRequestRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return request, nil
}

func (f *fakeRequestRepository) ListByUser(ctx context.Context, userID string) ([]leave.Request, error) {
	var result []leave.Request
	for _, request := range f.requests {
		if request.UserID == userID {
			result = append(result, request)
		}
	}
	return result, nil
}

func (f *fakeRequestRepository) List(ctx context.Context, status *leave.RequestStatus) ([]leave.Request, error) {
	var result []leave.Request
	for _, request := range f.requests {
		if status == nil || request.Status == *status {
			result = append(result, request)
		}
	}
	return result, nil
}

func (f *fakeRequestRepository) Update(ctx context.Context, request leave.Request) error {
	if _, ok := f.requests[request.ID]; !ok {
		return leave.ErrRequestNotFound
	}
	f.requests[request.ID] = request
	return nil
}

// authedContext builds a context carrying a verified token for userID.
func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestLeaveService(repo leave.RequestRepository) leave.LeaveService {
	return NewLeaveService(nil, repo, time.UTC)
}

func TestCreateRequest(t *testing.T) {
	repo := newFakeRequestRepository()
	svc := newTestLeaveService(repo)
	ctx := authedContext(t, "user-1")

	result, err := svc.CreateRequest(ctx, leave.CreateRequest{
		StartDate: "2025-04-01",
		EndDate:   "2025-04-03",
		Reason:    "Family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, string(leave.StatusPending), result.Status)
	assert.Equal(t, "2025-04-01", result.StartDate)
	assert.Equal(t, "2025-04-03", result.EndDate)
	assert.NotEmpty(t, result.ID)
}

func TestCreateRequestValidation(t *testing.T) {
	svc := newTestLeaveService(newFakeRequestRepository())
	ctx := authedContext(t, "user-1")

	_, err := svc.CreateRequest(ctx, leave.CreateRequest{
		StartDate: "2025-04-03",
		EndDate:   "2025-04-01",
		Reason:    "Backwards range",
	})
	assert.Error(t, err)
}

func TestApproveRequest(t *testing.T) {
	repo := newFakeRequestRepository()
	svc := newTestLeaveService(repo)

	created, err := svc.CreateRequest(authedContext(t, "user-1"), leave.CreateRequest{
		StartDate: "2025-04-01",
		EndDate:   "2025-04-01",
		Reason:    "Appointment",
	})
	require.NoError(t, err)

	result, err := svc.ApproveRequest(authedContext(t, "admin-1"), created.ID)
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusApproved), result.Status)
	require.NotNil(t, result.ApprovedBy)
	assert.Equal(t, "admin-1", *result.ApprovedBy)
	assert.NotNil(t, result.ApprovedAt)
}

func TestApproveRequestAlreadyProcessed(t *testing.T) {
	repo := newFakeRequestRepository()
	svc := newTestLeaveService(repo)
	adminCtx := authedContext(t, "admin-1")

	created, err := svc.CreateRequest(authedContext(t, "user-1"), leave.CreateRequest{
		StartDate: "2025-04-01",
		EndDate:   "2025-04-01",
		Reason:    "Appointment",
	})
	require.NoError(t, err)

	_, err = svc.ApproveRequest(adminCtx, created.ID)
	require.NoError(t, err)

	_, err = svc.ApproveRequest(adminCtx, created.ID)
	assert.ErrorIs(t, err, leave.ErrRequestAlreadyProcessed)
}

func TestRejectRequest(t *testing.T) {
	repo := newFakeRequestRepository()
	svc := newTestLeaveService(repo)

	created, err := svc.CreateRequest(authedContext(t, "user-1"), leave.CreateRequest{
		StartDate: "2025-04-01",
		EndDate:   "2025-04-02",
		Reason:    "Trip",
	})
	require.NoError(t, err)

	result, err := svc.RejectRequest(authedContext(t, "admin-1"), leave.RejectRequest{
		ID:     created.ID,
		Reason: "Too many people out that week",
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusRejected), result.Status)
	require.NotNil(t, result.RejectionReason)
	assert.Equal(t, "Too many people out that week", *result.RejectionReason)
}

func TestRejectRequestRequiresReason(t *testing.T) {
	svc := newTestLeaveService(newFakeRequestRepository())

	_, err := svc.RejectRequest(authedContext(t, "admin-1"), leave.RejectRequest{ID: "any"})
	assert.Error(t, err)
}

func TestGetMyRequestsScopedToUser(t *testing.T) {
	repo := newFakeRequestRepository()
	svc := newTestLeaveService(repo)

	_, err := svc.CreateRequest(authedContext(t, "user-1"), leave.CreateRequest{
		StartDate: "2025-04-01", EndDate: "2025-04-01", Reason: "Mine",
	})
	require.NoError(t, err)
	_, err = svc.CreateRequest(authedContext(t, "user-2"), leave.CreateRequest{
		StartDate: "2025-04-02", EndDate: "2025-04-02", Reason: "Theirs",
	})
	require.NoError(t, err)

	mine, err := svc.GetMyRequests(authedContext(t, "user-1"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Reason)
}
