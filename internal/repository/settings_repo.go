package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nexhr/orgassist/internal/model"
)

type SettingsRepository struct {
	BaseRepository[model.AISettings]
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{BaseRepository: BaseRepository[model.AISettings]{DB: db}}
}

// FindByPerson returns nil when the person has no stored settings; callers
// fall back to the service defaults.
func (r *SettingsRepository) FindByPerson(ctx context.Context, personID uuid.UUID) (*model.AISettings, error) {
	var settings model.AISettings
	err := r.DB.WithContext(ctx).
		Where("person_id = ? AND deleted_at IS NULL", personID).
		First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
