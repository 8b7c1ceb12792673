package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nexhr/orgassist/internal/model"
)

type DocumentRepository struct {
	BaseRepository[model.Document]
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{BaseRepository: BaseRepository[model.Document]{DB: db}}
}

// Search keyword-matches title and description, optionally filtered by file
// type, newest first.
func (r *DocumentRepository) Search(ctx context.Context, orgID uuid.UUID, query, fileType string) ([]model.Document, error) {
	like := "%" + query + "%"
	q := r.DB.WithContext(ctx).
		Where("organization_id = ? AND (title ILIKE ? OR description ILIKE ?) AND deleted_at IS NULL", orgID, like, like)
	if fileType != "" {
		q = q.Where("file_type = ?", fileType)
	}
	var docs []model.Document
	err := q.Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) FindByPerson(ctx context.Context, personID uuid.UUID) ([]model.Document, error) {
	var docs []model.Document
	err := r.DB.WithContext(ctx).
		Where("person_id = ? AND deleted_at IS NULL", personID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}
