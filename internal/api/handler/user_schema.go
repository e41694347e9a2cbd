package handler

type createUserRequest struct {
	Email        string  `json:"email"         validate:"required,email"`
	Password     string  `json:"password"      validate:"required,min=6"`
	Name         string  `json:"name"          validate:"required"`
	Role         string  `json:"role"          validate:"omitempty"`
	DepartmentID *string `json:"department_id" validate:"omitempty"`
}

// updateUserRequest uses pointers so absent fields are left untouched.
type updateUserRequest struct {
	Name         *string `json:"name"          validate:"omitempty,min=1"`
	Role         *string `json:"role"          validate:"omitempty"`
	DepartmentID *string `json:"department_id" validate:"omitempty"`
	Password     *string `json:"password"      validate:"omitempty,min=6"`
}
