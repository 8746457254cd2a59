package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mir-ams/attendance-backend-go/internal/domain/user"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/jwt"
)

type authService struct {
	userRepo user.UserRepository
	jwtSvc   jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtSvc jwt.Service) user.AuthService {
	return &authService{userRepo: userRepo, jwtSvc: jwtSvc}
}

func (s *authService) Login(ctx context.Context, req user.LoginRequest) (user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return user.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if errors.Is(err, user.ErrUserNotFound) {
		// Same failure as a bad password so usernames cannot be probed.
		return user.TokenResponse{}, user.ErrInvalidCredentials
	}
	if err != nil {
		return user.TokenResponse{}, fmt.Errorf("failed to load user: %w", err)
	}

	if !u.IsActive {
		return user.TokenResponse{}, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return user.TokenResponse{}, user.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtSvc.GenerateAccessToken(u.ID, u.Role, u.EmployeeID)
	if err != nil {
		return user.TokenResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, u.ID, time.Now()); err != nil {
		return user.TokenResponse{}, fmt.Errorf("failed to update last login: %w", err)
	}

	return user.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresAt - time.Now().Unix(),
		Role:        u.Role,
		EmployeeID:  u.EmployeeID,
	}, nil
}
