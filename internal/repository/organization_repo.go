package repository

import (
	"gorm.io/gorm"

	"github.com/nexhr/orgassist/internal/model"
)

type OrganizationRepository struct {
	BaseRepository[model.Organization]
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{BaseRepository: BaseRepository[model.Organization]{DB: db}}
}
