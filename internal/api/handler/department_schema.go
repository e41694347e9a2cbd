package handler

type createDepartmentRequest struct {
	Name     string  `json:"name"      validate:"required"`
	ParentID *string `json:"parent_id" validate:"omitempty"`
}
