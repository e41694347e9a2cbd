package domain

import (
	"errors"
	"time"
)

var ErrDepartmentNotFound = errors.New("department not found")
var ErrDepartmentExists = errors.New("department already exists")

// Department is a node in the organisational tree. ParentID is nil for
// root departments; when set it must reference an existing department
// (enforced by the store's foreign key).
type Department struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  *string   `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
