package user

import (
	"context"
	"fmt"

	"github.com/bizpanel/panel-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	userRepo user.Repository
}

func NewService(userRepo user.Repository) user.Service {
	return &service{userRepo: userRepo}
}

func (s *service) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	dailyRate := decimal.Zero
	if req.DailyRate != nil {
		dailyRate = *req.DailyRate
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		Position:     req.Position,
		DailyRate:    dailyRate,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

func (s *service) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.userRepo.Update(ctx, req); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *service) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

func (s *service) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

func (s *service) ListEmployees(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return nil, err
	}
	return toResponses(users), nil
}

func toResponses(users []user.User) []user.UserResponse {
	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses
}
