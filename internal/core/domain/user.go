package domain

import (
	"errors"
	"time"
)

// Role is the closed set of access levels known to the system. Both input
// validation and route authorization consume this enumeration; role
// literals must not be duplicated elsewhere.
type Role string

const (
	RoleUser     Role = "USER"
	RoleEmployee Role = "EMPLOYEE"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

var ErrValidation = errors.New("invalid input")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidResetToken = errors.New("invalid or expired reset token")
var ErrForbidden = errors.New("access forbidden")

// User models an account in the admin backend. PasswordHash never leaves
// the process: the json tag excludes it from every outward view.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	DepartmentID *string   `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
