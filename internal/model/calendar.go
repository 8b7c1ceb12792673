package model

import "github.com/google/uuid"

type CalendarConnection struct {
	BaseModel
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	PersonID       uuid.UUID `gorm:"type:uuid;not null;index" json:"person_id"`
	Provider       string    `gorm:"size:50" json:"provider,omitempty"`
	Connected      bool      `gorm:"default:false" json:"connected"`
}

func (CalendarConnection) TableName() string {
	return "calendar_connections"
}
