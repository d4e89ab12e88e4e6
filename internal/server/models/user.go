package models

import "time"

// User roles.
const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	OTPSecret    *string
	OTPExpiry    *time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
