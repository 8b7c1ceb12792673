package model

import "github.com/google/uuid"

type Person struct {
	BaseModel
	OrganizationID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"organization_id"`
	DepartmentID     *uuid.UUID  `gorm:"type:uuid;index" json:"department_id,omitempty"`
	Name             string      `gorm:"size:255;not null" json:"name"`
	Role             string      `gorm:"size:255" json:"role,omitempty"`
	Email            string      `gorm:"size:255;index" json:"email,omitempty"`
	Phone            string      `gorm:"size:50" json:"phone,omitempty"`
	Location         string      `gorm:"size:255" json:"location,omitempty"`
	Timezone         string      `gorm:"size:100" json:"timezone,omitempty"`
	Bio              string      `gorm:"type:text" json:"bio,omitempty"`
	ImageURL         string      `gorm:"size:500" json:"image_url,omitempty"`
	Responsibilities StringArray `gorm:"type:jsonb;default:'[]'" json:"responsibilities,omitempty"`
	// EnneagramType holds one of the nine canonical codes "1".."9", or "" when unknown.
	EnneagramType string `gorm:"size:10" json:"enneagram_type,omitempty"`
}

func (Person) TableName() string {
	return "people"
}
