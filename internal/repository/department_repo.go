package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nexhr/orgassist/internal/model"
)

type DepartmentRepository struct {
	BaseRepository[model.Department]
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{BaseRepository: BaseRepository[model.Department]{DB: db}}
}

// FindFirstByNameLike resolves a department by fuzzy name match, returning
// nil when nothing matches.
func (r *DepartmentRepository) FindFirstByNameLike(ctx context.Context, orgID uuid.UUID, fragment string) (*model.Department, error) {
	var dept model.Department
	err := r.DB.WithContext(ctx).
		Where("organization_id = ? AND name ILIKE ? AND deleted_at IS NULL", orgID, "%"+fragment+"%").
		First(&dept).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *DepartmentRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Department, error) {
	var depts []model.Department
	err := r.DB.WithContext(ctx).
		Where("organization_id = ? AND deleted_at IS NULL", orgID).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}
