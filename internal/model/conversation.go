package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConversationMessage is one persisted chat turn. Session ids carry their
// own scope prefix ("person:<id>" or "hr:<org id>"), so no separate org
// column is needed.
type ConversationMessage struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID string         `gorm:"size:255;index;not null" json:"session_id"`
	Role      string         `gorm:"size:50;not null" json:"role"`
	Content   string         `gorm:"type:text" json:"content"`
	Metadata  JSONMap        `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ConversationMessage) TableName() string {
	return "conversation_messages"
}
