package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nexhr/orgassist/internal/model"
)

type TaskRepository struct {
	BaseRepository[model.Task]
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{BaseRepository: BaseRepository[model.Task]{DB: db}}
}

func (r *TaskRepository) FindActiveByPerson(ctx context.Context, personID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.DB.WithContext(ctx).
		Where("person_id = ? AND status <> ? AND deleted_at IS NULL", personID, model.TaskStatusDone).
		Order("due_date ASC NULLS LAST").
		Find(&tasks).Error
	return tasks, err
}
