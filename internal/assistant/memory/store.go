// Package memory persists per-session conversation history for the chat
// pipeline. Three backends are provided: in-process, Redis, and Postgres.
package memory

import (
	"bytes"
	"context"
	"encoding/gob"

	"github.com/cloudwego/eino/schema"
)

// Store persists and restores conversation history.
type Store interface {
	Read(ctx context.Context, sessionID string) ([]*schema.Message, error)
	Append(ctx context.Context, sessionID string, msgs ...*schema.Message) error
	Delete(ctx context.Context, sessionID string) error
}

func encodeMessages(msgs []*schema.Message) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(msgs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeMessages(b []byte) ([]*schema.Message, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var msgs []*schema.Message
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
