package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adminpanel/admin-system/internal/core/domain"
)

func TestDepartmentService_CreateRootAndChild(t *testing.T) {
	svc := NewDepartmentService(newStubDeptRepo(), zerolog.Nop())

	root, err := svc.Create(context.Background(), "Engineering", nil)
	if err != nil {
		t.Fatalf("create root failed: %v", err)
	}
	if root.ParentID != nil {
		t.Fatalf("root should have no parent")
	}

	child, err := svc.Create(context.Background(), "Backend", &root.ID)
	if err != nil {
		t.Fatalf("create child failed: %v", err)
	}
	if child.ParentID == nil || *child.ParentID != root.ID {
		t.Fatalf("child not attached to parent: %+v", child.ParentID)
	}
}

func TestDepartmentService_Create_EmptyParentMeansRoot(t *testing.T) {
	svc := NewDepartmentService(newStubDeptRepo(), zerolog.Nop())

	empty := ""
	dept, err := svc.Create(context.Background(), "Engineering", &empty)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if dept.ParentID != nil {
		t.Fatalf("empty parent id should create a root department")
	}
}

func TestDepartmentService_Create_UnknownParent(t *testing.T) {
	svc := NewDepartmentService(newStubDeptRepo(), zerolog.Nop())

	missing := "missing"
	if _, err := svc.Create(context.Background(), "Backend", &missing); !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestDepartmentService_Create_DuplicateName(t *testing.T) {
	svc := NewDepartmentService(newStubDeptRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), "Engineering", nil); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), "Engineering", nil); !errors.Is(err, domain.ErrDepartmentExists) {
		t.Fatalf("expected ErrDepartmentExists, got %v", err)
	}
}

func TestDepartmentService_Create_EmptyName(t *testing.T) {
	svc := NewDepartmentService(newStubDeptRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), "", nil); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDepartmentService_List(t *testing.T) {
	svc := NewDepartmentService(newStubDeptRepo(), zerolog.Nop())

	_, _ = svc.Create(context.Background(), "Engineering", nil)
	_, _ = svc.Create(context.Background(), "Sales", nil)

	departments, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(departments) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(departments))
	}
}
