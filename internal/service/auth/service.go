package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizpanel/panel-backend-go/internal/domain/auth"
	"github.com/bizpanel/panel-backend-go/internal/domain/user"
	"github.com/bizpanel/panel-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	userRepo user.Repository
	jwtSvc   jwt.Service
}

func NewService(userRepo user.Repository, jwtSvc jwt.Service) auth.Service {
	return &service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
	}
}

// Login verifies credentials and issues an access token plus a refresh
// token. The refresh token and its expiry are returned separately so
// the handler can set it as an HttpOnly cookie.
func (s *service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error as a bad password, so usernames cannot be probed.
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwtSvc.GenerateAccessToken(u.ID, u.Username, u.Role)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtSvc.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("generate refresh token: %w", err)
	}

	resp := auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        user.ToResponse(u),
	}
	return resp, refreshToken, refreshExpiresAt, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if s.jwtSvc.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	userID, err := s.jwtSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, fmt.Errorf("refresh: %w", err)
	}

	accessToken, expiresAt, err := s.jwtSvc.GenerateAccessToken(u.ID, u.Username, u.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *service) Logout(refreshToken string) {
	if refreshToken != "" {
		s.jwtSvc.RevokeToken(refreshToken)
	}
}
