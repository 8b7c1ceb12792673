package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nexhr/orgassist/internal/model"
)

type PersonRepository struct {
	BaseRepository[model.Person]
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{BaseRepository: BaseRepository[model.Person]{DB: db}}
}

// FindFirstByNameLike returns the first person whose name contains the
// fragment, in store order. First-match, not best-match: callers must not
// assume the closest name wins when several rows match.
func (r *PersonRepository) FindFirstByNameLike(ctx context.Context, orgID uuid.UUID, fragment string) (*model.Person, error) {
	var person model.Person
	err := r.DB.WithContext(ctx).
		Where("organization_id = ? AND name ILIKE ? AND deleted_at IS NULL", orgID, "%"+fragment+"%").
		First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepository) FindByEmail(ctx context.Context, orgID uuid.UUID, email string) (*model.Person, error) {
	var person model.Person
	err := r.DB.WithContext(ctx).
		Where("organization_id = ? AND email = ? AND deleted_at IS NULL", orgID, email).
		First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepository) FindByDepartment(ctx context.Context, departmentID uuid.UUID) ([]model.Person, error) {
	var people []model.Person
	err := r.DB.WithContext(ctx).
		Where("department_id = ? AND deleted_at IS NULL", departmentID).
		Order("name ASC").
		Find(&people).Error
	return people, err
}

// FindByResponsibility does an exact JSONB array-containment check against
// the responsibilities list.
func (r *PersonRepository) FindByResponsibility(ctx context.Context, orgID uuid.UUID, skill string) ([]model.Person, error) {
	needle, err := json.Marshal([]string{skill})
	if err != nil {
		return nil, err
	}
	var people []model.Person
	err = r.DB.WithContext(ctx).
		Where("organization_id = ? AND responsibilities @> ? AND deleted_at IS NULL", orgID, string(needle)).
		Find(&people).Error
	return people, err
}

// SearchProfiles is the broad fallback scan over bio and role text.
func (r *PersonRepository) SearchProfiles(ctx context.Context, orgID uuid.UUID, term string) ([]model.Person, error) {
	var people []model.Person
	like := "%" + term + "%"
	err := r.DB.WithContext(ctx).
		Where("organization_id = ? AND (bio ILIKE ? OR role ILIKE ?) AND deleted_at IS NULL", orgID, like, like).
		Find(&people).Error
	return people, err
}

func (r *PersonRepository) FindByLocation(ctx context.Context, orgID uuid.UUID, location string) ([]model.Person, error) {
	var people []model.Person
	err := r.DB.WithContext(ctx).
		Where("organization_id = ? AND location ILIKE ? AND deleted_at IS NULL", orgID, "%"+location+"%").
		Find(&people).Error
	return people, err
}

func (r *PersonRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Person, error) {
	var people []model.Person
	err := r.DB.WithContext(ctx).
		Where("organization_id = ? AND deleted_at IS NULL", orgID).
		Order("name ASC").
		Find(&people).Error
	return people, err
}

func (r *PersonRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Person, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var people []model.Person
	err := r.DB.WithContext(ctx).
		Where("id IN ? AND deleted_at IS NULL", ids).
		Find(&people).Error
	return people, err
}
