package prompt

import "github.com/nexhr/orgassist/internal/model"

// Settings is the fully resolved assistant configuration: every field is
// always present with a defined default, unlike the sparse stored record.
type Settings struct {
	Model              string
	Temperature        float64
	MaxTokens          int
	TopP               float64
	FrequencyPenalty   float64
	PresencePenalty    float64
	Persona            string
	KnowledgeLevel     string
	ResponseStyle      string
	CustomSystemPrompt string
}

func DefaultSettings() Settings {
	return Settings{
		Model:          "gpt-4o-mini",
		Temperature:    0.7,
		MaxTokens:      1024,
		TopP:           1.0,
		Persona:        "professional",
		KnowledgeLevel: "expert",
		ResponseStyle:  "balanced",
	}
}

// MergeSettings overlays a stored record on the defaults. Override
// precedence is field-by-field: a set field wins, an unset field keeps the
// default. CustomSystemPrompt is carried through here but applied wholesale
// at render time: when non-empty it replaces the templated prompt entirely.
func MergeSettings(base Settings, stored *model.AISettings) Settings {
	if stored == nil {
		return base
	}
	if stored.Model != "" {
		base.Model = stored.Model
	}
	if stored.Temperature != nil {
		base.Temperature = *stored.Temperature
	}
	if stored.MaxTokens != nil {
		base.MaxTokens = *stored.MaxTokens
	}
	if stored.TopP != nil {
		base.TopP = *stored.TopP
	}
	if stored.FrequencyPenalty != nil {
		base.FrequencyPenalty = *stored.FrequencyPenalty
	}
	if stored.PresencePenalty != nil {
		base.PresencePenalty = *stored.PresencePenalty
	}
	if stored.Persona != "" {
		base.Persona = stored.Persona
	}
	if stored.KnowledgeLevel != "" {
		base.KnowledgeLevel = stored.KnowledgeLevel
	}
	if stored.ResponseStyle != "" {
		base.ResponseStyle = stored.ResponseStyle
	}
	base.CustomSystemPrompt = stored.CustomSystemPrompt
	return base
}

var personaPhrases = map[string]string{
	"professional": "You communicate in a polished, businesslike manner.",
	"friendly":     "You are warm, approachable and conversational.",
	"coach":        "You guide with questions and encouragement rather than directives.",
	"concise":      "You favor short, direct answers over elaboration.",
}

var knowledgePhrases = map[string]string{
	"expert":       "You speak with deep expertise in this person's field.",
	"intermediate": "You have solid working knowledge of this person's field.",
	"basic":        "You keep explanations simple and avoid jargon.",
}

var stylePhrases = map[string]string{
	"detailed": "Give thorough, structured answers with supporting detail.",
	"balanced": "Balance completeness with brevity.",
	"brief":    "Keep answers as short as they can usefully be.",
}

func phrase(table map[string]string, key, fallback string) string {
	if p, ok := table[key]; ok {
		return p
	}
	return table[fallback]
}
