package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/adminpanel/admin-system/internal/core/domain"
	"github.com/adminpanel/admin-system/internal/core/ports"
)

func newUserFixture() (*UserService, *stubUserRepo, *stubDeptRepo) {
	users := newStubUserRepo()
	depts := newStubDeptRepo()
	return NewUserService(users, depts, zerolog.Nop()), users, depts
}

func TestUserService_CreateAndGet(t *testing.T) {
	svc, _, _ := newUserFixture()

	created, err := svc.Create(context.Background(), ports.SignUpInput{
		Email: "bob@example.com", Password: "pw123456", Name: "Bob", Role: domain.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Email != "bob@example.com" || got.Role != domain.RoleEmployee {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc, _, _ := newUserFixture()

	if _, err := svc.Create(context.Background(), ports.SignUpInput{
		Email: "bob@example.com", Password: "pw123456", Name: "Bob", Role: "OWNER",
	}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Update(t *testing.T) {
	svc, _, depts := newUserFixture()
	dept, _ := depts.Create(context.Background(), &domain.Department{Name: "Engineering"})

	created, _ := svc.Create(context.Background(), ports.SignUpInput{
		Email: "bob@example.com", Password: "pw123456", Name: "Bob",
	})

	name := "Robert"
	role := domain.RoleAdmin
	pass := "changed1"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Name:         &name,
		Role:         &role,
		DepartmentID: &dept.ID,
		Password:     &pass,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Robert" || updated.Role != domain.RoleAdmin {
		t.Fatalf("unexpected updated user: %+v", updated)
	}
	if updated.DepartmentID == nil || *updated.DepartmentID != dept.ID {
		t.Fatalf("department not attached: %+v", updated.DepartmentID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("changed1")); err != nil {
		t.Fatalf("password not rehashed: %v", err)
	}
}

func TestUserService_Update_DetachDepartment(t *testing.T) {
	svc, _, depts := newUserFixture()
	dept, _ := depts.Create(context.Background(), &domain.Department{Name: "Engineering"})

	created, _ := svc.Create(context.Background(), ports.SignUpInput{
		Email: "bob@example.com", Password: "pw123456", Name: "Bob", DepartmentID: &dept.ID,
	})

	empty := ""
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{DepartmentID: &empty})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.DepartmentID != nil {
		t.Fatalf("expected department to be detached")
	}
}

func TestUserService_Update_UnknownDepartment(t *testing.T) {
	svc, _, _ := newUserFixture()

	created, _ := svc.Create(context.Background(), ports.SignUpInput{
		Email: "bob@example.com", Password: "pw123456", Name: "Bob",
	})

	missing := "nope"
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{DepartmentID: &missing}); !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc, _, _ := newUserFixture()

	name := "Ghost"
	if _, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{Name: &name}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc, _, _ := newUserFixture()

	created, _ := svc.Create(context.Background(), ports.SignUpInput{
		Email: "bob@example.com", Password: "pw123456", Name: "Bob",
	})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
