package user

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a panel account. Every account has exactly one role; payroll
// only ever considers accounts with RoleEmployee.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Role         Role
	Position     *string
	DailyRate    decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

var RoleValues = []string{
	string(RoleOwner),
	string(RoleAdmin),
	string(RoleEmployee),
}
