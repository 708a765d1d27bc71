package user

import (
	"context"

	"github.com/bizpanel/panel-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateUserRequest struct {
	Username  string           `json:"username"`
	Name      string           `json:"name"`
	Password  string           `json:"password"`
	Role      string           `json:"role"`
	Position  *string          `json:"position,omitempty"`
	DailyRate *decimal.Decimal `json:"daily_rate,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be owner, admin or employee"})
	}
	if r.DailyRate != nil && r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID        string           `json:"-"`
	Name      *string          `json:"name,omitempty"`
	Position  *string          `json:"position,omitempty"`
	DailyRate *decimal.Decimal `json:"daily_rate,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be blank"})
	}
	if r.DailyRate != nil && r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	Position  *string         `json:"position,omitempty"`
	DailyRate decimal.Decimal `json:"daily_rate"`
}

// Service is the account management contract consumed by the HTTP
// layer. Employees are users with the employee role.
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	ListEmployees(ctx context.Context) ([]UserResponse, error)
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      string(u.Role),
		Position:  u.Position,
		DailyRate: u.DailyRate,
	}
}
