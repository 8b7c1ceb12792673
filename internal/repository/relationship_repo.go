package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nexhr/orgassist/internal/model"
)

type RelationshipRepository struct {
	BaseRepository[model.ReportingRelationship]
}

func NewRelationshipRepository(db *gorm.DB) *RelationshipRepository {
	return &RelationshipRepository{BaseRepository: BaseRepository[model.ReportingRelationship]{DB: db}}
}

// FindByReport returns all edges where the person is the report. The schema
// does not enforce a single manager, so this can return more than one row.
func (r *RelationshipRepository) FindByReport(ctx context.Context, reportID uuid.UUID) ([]model.ReportingRelationship, error) {
	var rels []model.ReportingRelationship
	err := r.DB.WithContext(ctx).
		Where("report_id = ? AND deleted_at IS NULL", reportID).
		Find(&rels).Error
	return rels, err
}

func (r *RelationshipRepository) FindByManager(ctx context.Context, managerID uuid.UUID) ([]model.ReportingRelationship, error) {
	var rels []model.ReportingRelationship
	err := r.DB.WithContext(ctx).
		Where("manager_id = ? AND deleted_at IS NULL", managerID).
		Find(&rels).Error
	return rels, err
}

func (r *RelationshipRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.ReportingRelationship, error) {
	var rels []model.ReportingRelationship
	err := r.DB.WithContext(ctx).
		Where("organization_id = ? AND deleted_at IS NULL", orgID).
		Find(&rels).Error
	return rels, err
}
