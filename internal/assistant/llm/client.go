// Package llm wraps the chat-model boundary. The rest of the service treats
// it as an opaque request/response collaborator.
package llm

import (
	"context"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// PlaceholderReply is produced locally when no credential is configured, so
// the pipeline still returns a response end to end.
const PlaceholderReply = "The language model is not configured for this deployment, so a generated answer is unavailable. The question was understood and the relevant organization data was assembled."

// Client wraps a chat model. A Client with a nil model is valid and answers
// every request with PlaceholderReply.
type Client struct {
	chatModel model.BaseChatModel
}

// NewClient builds a client from provider config. A missing API key is not
// an error: it yields a degraded client rather than a failed startup.
func NewClient(ctx context.Context, cfg *ProviderConfig) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return &Client{}, nil
	}
	chatModel, err := NewFactory().Create(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Client{chatModel: chatModel}, nil
}

// NewClientWithModel is used by tests to inject a fake model.
func NewClientWithModel(m model.BaseChatModel) *Client {
	return &Client{chatModel: m}
}

// Configured reports whether a real model backs this client.
func (c *Client) Configured() bool {
	return c.chatModel != nil
}

// GenerateParams carries the per-request sampling settings.
type GenerateParams struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// Generate runs the system prompt, prior history and user message through
// the model and returns the reply text.
func (c *Client) Generate(ctx context.Context, systemPrompt string, history []*schema.Message, userPrompt string, params GenerateParams) (string, error) {
	if c.chatModel == nil {
		return PlaceholderReply, nil
	}

	msgs := make([]*schema.Message, 0, len(history)+2)
	msgs = append(msgs, schema.SystemMessage(systemPrompt))
	msgs = append(msgs, history...)
	msgs = append(msgs, schema.UserMessage(userPrompt))

	var opts []model.Option
	if params.Temperature > 0 {
		opts = append(opts, model.WithTemperature(float32(params.Temperature)))
	}
	if params.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(params.MaxTokens))
	}
	if params.TopP > 0 {
		opts = append(opts, model.WithTopP(float32(params.TopP)))
	}

	out, err := c.chatModel.Generate(ctx, msgs, opts...)
	if err != nil {
		return "", err
	}
	return out.Content, nil
}
