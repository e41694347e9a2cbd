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

type departmentRecord struct {
	ID        string  `gorm:"type:uuid;primaryKey"`
	Name      string  `gorm:"uniqueIndex;not null"`
	ParentID  *string `gorm:"type:uuid"`
	Parent    *departmentRecord
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (departmentRecord) TableName() string { return "departments" }

func (r *departmentRecord) toDomain() *domain.Department {
	return &domain.Department{
		ID:        r.ID,
		Name:      r.Name,
		ParentID:  r.ParentID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// DepartmentRepository implements ports.DepartmentRepository on PostgreSQL.
type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id string) (*domain.Department, error) {
	var rec departmentRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrDepartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find department by id: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	var recs []departmentRecord
	if err := r.db.WithContext(ctx).Order("name").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}

	departments := make([]domain.Department, 0, len(recs))
	for i := range recs {
		departments = append(departments, *recs[i].toDomain())
	}
	return departments, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, department *domain.Department) (*domain.Department, error) {
	rec := &departmentRecord{
		ID:        department.ID,
		Name:      department.Name,
		ParentID:  department.ParentID,
		CreatedAt: department.CreatedAt,
		UpdatedAt: department.UpdatedAt,
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, domain.ErrDepartmentExists
		case isForeignKeyViolation(err):
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("create department: %w", err)
	}
	return rec.toDomain(), nil
}

var _ ports.DepartmentRepository = (*DepartmentRepository)(nil)
