package model

type Organization struct {
	BaseModel
	Name        string `gorm:"size:255;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex" json:"slug,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (Organization) TableName() string {
	return "organizations"
}
