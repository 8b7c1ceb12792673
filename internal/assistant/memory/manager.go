package memory

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// Manager windows conversation history over a Store.
type Manager struct {
	store      Store
	windowSize int
}

func NewManager(store Store, windowSize int) *Manager {
	if store == nil {
		store = NewInMemoryStore()
	}
	if windowSize <= 0 {
		windowSize = 10
	}
	return &Manager{store: store, windowSize: windowSize}
}

// WindowedHistory returns the last N messages for a session.
func (m *Manager) WindowedHistory(ctx context.Context, sessionID string) ([]*schema.Message, error) {
	msgs, err := m.store.Read(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(msgs) <= m.windowSize {
		return msgs, nil
	}
	return msgs[len(msgs)-m.windowSize:], nil
}

func (m *Manager) AddExchange(ctx context.Context, sessionID, userText, assistantText string) error {
	return m.store.Append(ctx, sessionID,
		schema.UserMessage(userText),
		schema.AssistantMessage(assistantText, nil),
	)
}

func (m *Manager) Clear(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}
