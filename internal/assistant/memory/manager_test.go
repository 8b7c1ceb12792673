package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStoreRoundTrip(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	msgs, err := store.Read(ctx, "empty")
	require.NoError(t, err)
	assert.Nil(t, msgs)

	require.NoError(t, store.Append(ctx, "s1",
		schema.UserMessage("hello"),
		schema.AssistantMessage("hi", nil),
	))

	msgs, err = store.Read(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, schema.User, msgs[0].Role)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, schema.Assistant, msgs[1].Role)

	require.NoError(t, store.Delete(ctx, "s1"))
	msgs, err = store.Read(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestInMemoryStoreReadReturnsCopy(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", schema.UserMessage("original")))

	msgs, err := store.Read(ctx, "s1")
	require.NoError(t, err)
	msgs[0] = schema.UserMessage("mutated")

	again, err := store.Read(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Content)
}

func TestInMemoryStoreSessionIsolation(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "a", schema.UserMessage("for a")))
	require.NoError(t, store.Append(ctx, "b", schema.UserMessage("for b")))

	msgs, err := store.Read(ctx, "a")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "for a", msgs[0].Content)
}

func TestManagerWindowsHistory(t *testing.T) {
	mgr := NewManager(NewInMemoryStore(), 4)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		require.NoError(t, mgr.AddExchange(ctx, "s1",
			fmt.Sprintf("question %d", i),
			fmt.Sprintf("answer %d", i),
		))
	}

	// 12 stored messages, window of 4 keeps the last two exchanges.
	history, err := mgr.WindowedHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, "question 4", history[0].Content)
	assert.Equal(t, "answer 5", history[3].Content)
}

func TestManagerShortHistoryUnwindowed(t *testing.T) {
	mgr := NewManager(NewInMemoryStore(), 10)
	ctx := context.Background()

	require.NoError(t, mgr.AddExchange(ctx, "s1", "q", "a"))

	history, err := mgr.WindowedHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestManagerDefaults(t *testing.T) {
	mgr := NewManager(nil, 0)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		require.NoError(t, mgr.AddExchange(ctx, "s1", "q", "a"))
	}

	history, err := mgr.WindowedHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, history, 10, "nil store and zero window fall back to defaults")
}

func TestManagerClear(t *testing.T) {
	mgr := NewManager(NewInMemoryStore(), 4)
	ctx := context.Background()

	require.NoError(t, mgr.AddExchange(ctx, "s1", "q", "a"))
	require.NoError(t, mgr.Clear(ctx, "s1"))

	history, err := mgr.WindowedHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)
}
