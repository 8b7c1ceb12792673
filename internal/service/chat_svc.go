package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/nexhr/orgassist/internal/assistant/llm"
	"github.com/nexhr/orgassist/internal/assistant/memory"
	"github.com/nexhr/orgassist/internal/assistant/prompt"
)

// ChatService runs the full pipeline: intent detection and context assembly
// (for the HR assistant), prompt rendering, history windowing, and the model
// call. Each request runs to completion independently; there is no
// mid-pipeline abort beyond context cancellation at the I/O boundaries.
type ChatService struct {
	contexts *ContextService
	prompts  *prompt.Builder
	memory   *memory.Manager
	llm      *llm.Client
}

func NewChatService(contexts *ContextService, prompts *prompt.Builder, mem *memory.Manager, client *llm.Client) *ChatService {
	return &ChatService{contexts: contexts, prompts: prompts, memory: mem, llm: client}
}

type ChatReply struct {
	Reply   string           `json:"reply"`
	Context *EnrichedContext `json:"context,omitempty"`
}

// ChatWithPerson answers as a specific person's assistant.
func (s *ChatService) ChatWithPerson(ctx context.Context, personID uuid.UUID, sessionID, text string) (*ChatReply, error) {
	system := s.prompts.PersonSystemPrompt(ctx, personID)
	settings := s.prompts.SettingsFor(ctx, personID)

	history, err := s.memory.WindowedHistory(ctx, sessionID)
	if err != nil {
		log.Printf("history read failed for session %s: %v", sessionID, err)
		history = nil
	}

	reply, err := s.llm.Generate(ctx, system, history, text, llm.GenerateParams{
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
		TopP:        settings.TopP,
	})
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	if err := s.memory.AddExchange(ctx, sessionID, text, reply); err != nil {
		log.Printf("history write failed for session %s: %v", sessionID, err)
	}
	return &ChatReply{Reply: reply}, nil
}

// AskHR answers an organization-wide question through the enriched-context
// pipeline.
func (s *ChatService) AskHR(ctx context.Context, orgID uuid.UUID, sessionID, text string) (*ChatReply, error) {
	enriched := s.contexts.BuildContext(ctx, orgID, text)
	system := s.prompts.OrgSystemPrompt(ctx, orgID)

	history, err := s.memory.WindowedHistory(ctx, sessionID)
	if err != nil {
		log.Printf("history read failed for session %s: %v", sessionID, err)
		history = nil
	}

	reply, err := s.llm.Generate(ctx, system, history, composeUserPrompt(text, enriched), llm.GenerateParams{
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	if err := s.memory.AddExchange(ctx, sessionID, text, reply); err != nil {
		log.Printf("history write failed for session %s: %v", sessionID, err)
	}
	return &ChatReply{Reply: reply, Context: enriched}, nil
}

// composeUserPrompt appends the assembled context so the model sees the same
// enrichment the summary reports.
func composeUserPrompt(text string, enriched *EnrichedContext) string {
	var sb strings.Builder
	sb.WriteString(text)
	if enriched.Summary != "" {
		sb.WriteString("\n\n[Assembled context: ")
		sb.WriteString(enriched.Summary)
		sb.WriteString("]")
	}
	if len(enriched.Recommendations) > 0 {
		sb.WriteString("\n[Suggested guidance:\n")
		for _, rec := range enriched.Recommendations {
			sb.WriteString("- ")
			sb.WriteString(rec)
			sb.WriteString("\n")
		}
		sb.WriteString("]")
	}
	return sb.String()
}
