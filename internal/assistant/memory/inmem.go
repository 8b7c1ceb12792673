package memory

import (
	"context"
	"sync"

	"github.com/cloudwego/eino/schema"
)

// InMemoryStore keeps history in a process-local map. Used when neither
// Redis nor persistence is configured.
type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string][]*schema.Message
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string][]*schema.Message)}
}

func (s *InMemoryStore) Read(ctx context.Context, sessionID string) ([]*schema.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs, ok := s.data[sessionID]
	if !ok {
		return nil, nil
	}
	out := make([]*schema.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (s *InMemoryStore) Append(ctx context.Context, sessionID string, msgs ...*schema.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = append(s.data[sessionID], msgs...)
	return nil
}

func (s *InMemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}
