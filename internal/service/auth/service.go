package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/qrworks/qrworks-backend-go/internal/domain/auth"
	"github.com/qrworks/qrworks-backend-go/internal/domain/user"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/database"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	db       *database.DB
	userRepo user.UserRepository
	jwtSvc   jwt.Service
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, jwtSvc jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:       db,
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := a.jwtSvc.GenerateAccessToken(userData.ID, userData.Email, userData.FullName, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, _, err := a.jwtSvc.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		UserID:       userData.ID,
		FullName:     userData.FullName,
		Role:         string(userData.Role),
	}, nil
}
