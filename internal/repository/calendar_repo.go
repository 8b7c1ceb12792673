package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nexhr/orgassist/internal/model"
)

type CalendarRepository struct {
	BaseRepository[model.CalendarConnection]
}

func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{BaseRepository: BaseRepository[model.CalendarConnection]{DB: db}}
}

func (r *CalendarRepository) FindByPerson(ctx context.Context, personID uuid.UUID) ([]model.CalendarConnection, error) {
	var conns []model.CalendarConnection
	err := r.DB.WithContext(ctx).
		Where("person_id = ? AND deleted_at IS NULL", personID).
		Find(&conns).Error
	return conns, err
}
