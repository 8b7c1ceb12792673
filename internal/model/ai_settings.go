package model

import "github.com/google/uuid"

// AISettings holds the per-person assistant configuration. All fields have
// service-level defaults; CustomSystemPrompt, when non-empty, replaces the
// templated system prompt entirely.
type AISettings struct {
	BaseModel
	OrganizationID     uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	PersonID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"person_id"`
	Model              string    `gorm:"size:100" json:"model,omitempty"`
	Temperature        *float64  `json:"temperature,omitempty"`
	MaxTokens          *int      `json:"max_tokens,omitempty"`
	TopP               *float64  `json:"top_p,omitempty"`
	FrequencyPenalty   *float64  `json:"frequency_penalty,omitempty"`
	PresencePenalty    *float64  `json:"presence_penalty,omitempty"`
	Persona            string    `gorm:"size:50" json:"persona,omitempty"`
	KnowledgeLevel     string    `gorm:"size:50" json:"knowledge_level,omitempty"`
	ResponseStyle      string    `gorm:"size:50" json:"response_style,omitempty"`
	CustomSystemPrompt string    `gorm:"type:text" json:"custom_system_prompt,omitempty"`
}

func (AISettings) TableName() string {
	return "ai_settings"
}
