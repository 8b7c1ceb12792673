package model

import "github.com/google/uuid"

type Document struct {
	BaseModel
	OrganizationID uuid.UUID   `gorm:"type:uuid;not null;index" json:"organization_id"`
	PersonID       *uuid.UUID  `gorm:"type:uuid;index" json:"person_id,omitempty"`
	Title          string      `gorm:"size:500;not null" json:"title"`
	Description    string      `gorm:"type:text" json:"description,omitempty"`
	FileType       string      `gorm:"size:50" json:"file_type,omitempty"`
	IsPublic       bool        `gorm:"default:false" json:"is_public"`
	Tags           StringArray `gorm:"type:jsonb;default:'[]'" json:"tags,omitempty"`
}

func (Document) TableName() string {
	return "documents"
}
