package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameExists      = errors.New("username already taken")
	ErrInvalidRole         = errors.New("invalid role")
	ErrOwnerAccessRequired = errors.New("owner access required")
	ErrAdminAccessRequired = errors.New("admin access required")
)
