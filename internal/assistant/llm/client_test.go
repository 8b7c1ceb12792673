package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatModel struct {
	lastInput []*schema.Message
	reply     string
	err       error
}

func (m *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.lastInput = input
	if m.err != nil {
		return nil, m.err
	}
	return schema.AssistantMessage(m.reply, nil), nil
}

func (m *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func TestUnconfiguredClientReturnsPlaceholder(t *testing.T) {
	client, err := NewClient(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, client.Configured())

	reply, err := client.Generate(context.Background(), "system", nil, "hello", GenerateParams{})
	require.NoError(t, err)
	assert.Equal(t, PlaceholderReply, reply)
}

func TestEmptyAPIKeyYieldsDegradedClient(t *testing.T) {
	client, err := NewClient(context.Background(), &ProviderConfig{Kind: ProviderOpenAI})
	require.NoError(t, err)
	assert.False(t, client.Configured())
}

func TestGenerateAssemblesMessageOrder(t *testing.T) {
	fake := &fakeChatModel{reply: "sure"}
	client := NewClientWithModel(fake)
	require.True(t, client.Configured())

	history := []*schema.Message{
		schema.UserMessage("earlier question"),
		schema.AssistantMessage("earlier answer", nil),
	}

	reply, err := client.Generate(context.Background(), "be helpful", history, "new question", GenerateParams{Temperature: 0.5})
	require.NoError(t, err)
	assert.Equal(t, "sure", reply)

	require.Len(t, fake.lastInput, 4)
	assert.Equal(t, schema.System, fake.lastInput[0].Role)
	assert.Equal(t, "be helpful", fake.lastInput[0].Content)
	assert.Equal(t, "earlier question", fake.lastInput[1].Content)
	assert.Equal(t, "earlier answer", fake.lastInput[2].Content)
	assert.Equal(t, schema.User, fake.lastInput[3].Role)
	assert.Equal(t, "new question", fake.lastInput[3].Content)
}

func TestGeneratePropagatesModelError(t *testing.T) {
	fake := &fakeChatModel{err: errors.New("rate limited")}
	client := NewClientWithModel(fake)

	_, err := client.Generate(context.Background(), "system", nil, "hello", GenerateParams{})
	assert.Error(t, err)
}
