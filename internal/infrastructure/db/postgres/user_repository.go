package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adminpanel/admin-system/internal/core/domain"
	"github.com/adminpanel/admin-system/internal/core/ports"
)

// userRecord is the persistence shape of a user. The department reference
// carries ON DELETE semantics of RESTRICT: a department with members
// cannot be removed out from under them.
type userRecord struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	Email        string  `gorm:"uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	Name         string  `gorm:"not null"`
	Role         string  `gorm:"not null"`
	DepartmentID *string `gorm:"type:uuid"`
	Department   *departmentRecord
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Name:         r.Name,
		Role:         domain.Role(r.Role),
		DepartmentID: r.DepartmentID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func userRecordFrom(u *domain.User) *userRecord {
	return &userRecord{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         string(u.Role),
		DepartmentID: u.DepartmentID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// UserRepository implements ports.UserRepository on PostgreSQL.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var recs []userRecord
	if err := r.db.WithContext(ctx).Order("created_at").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(recs))
	for i := range recs {
		users = append(users, *recs[i].toDomain())
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	rec := userRecordFrom(user)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, domain.ErrEmailTaken
		case isForeignKeyViolation(err):
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	rec := userRecordFrom(user)

	// Save with a full record so a nil DepartmentID clears the column.
	res := r.db.WithContext(ctx).Model(&userRecord{ID: rec.ID}).
		Select("Email", "PasswordHash", "Name", "Role", "DepartmentID", "UpdatedAt").
		Updates(rec)
	if err := res.Error; err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, domain.ErrEmailTaken
		case isForeignKeyViolation(err):
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&userRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"updated_at":    time.Now().UTC(),
		})
	if res.Error != nil {
		return fmt.Errorf("update password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&userRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
