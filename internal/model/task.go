package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type Task struct {
	BaseModel
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null;index" json:"organization_id"`
	PersonID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"person_id"`
	Title          string     `gorm:"size:500;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description,omitempty"`
	Status         TaskStatus `gorm:"size:20;default:'open'" json:"status"`
	DueDate        *time.Time `json:"due_date,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}
