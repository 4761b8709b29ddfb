package auth

import (
	"context"
)

// AuthService defines the minimal token-issuing surface the API needs.
type AuthService interface {
	// Login verifies credentials and issues access + refresh tokens
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
