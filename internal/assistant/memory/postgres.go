package memory

import (
	"context"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nexhr/orgassist/internal/model"
)

// PostgresStore persists history as ConversationMessage rows. It is the
// durable default when Redis is not configured.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Read(ctx context.Context, sessionID string) ([]*schema.Message, error) {
	var rows []model.ConversationMessage
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	msgs := make([]*schema.Message, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, &schema.Message{
			Role:    schema.RoleType(row.Role),
			Content: row.Content,
		})
	}
	return msgs, nil
}

func (s *PostgresStore) Append(ctx context.Context, sessionID string, msgs ...*schema.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	rows := make([]model.ConversationMessage, 0, len(msgs))
	for _, msg := range msgs {
		rows = append(rows, model.ConversationMessage{
			ID:        uuid.New(),
			SessionID: sessionID,
			Role:      string(msg.Role),
			Content:   msg.Content,
		})
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}

func (s *PostgresStore) Delete(ctx context.Context, sessionID string) error {
	return s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.ConversationMessage{}).Error
}
