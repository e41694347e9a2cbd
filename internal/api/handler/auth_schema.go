package handler

import "github.com/adminpanel/admin-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Role membership is deliberately not validated here with a tag: the
// closed role set lives in the domain package and the services check it,
// so the enumeration is never duplicated as string literals.

type signUpRequest struct {
	Email        string  `json:"email"         validate:"required,email"`
	Password     string  `json:"password"      validate:"required,min=6"`
	Name         string  `json:"name"          validate:"required"`
	Role         string  `json:"role"          validate:"omitempty"`
	DepartmentID *string `json:"department_id" validate:"omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}
