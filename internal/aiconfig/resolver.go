package aiconfig

import (
	"github.com/brain-time/coach/internal/llm"
	"github.com/brain-time/coach/pkg/types"
)

// InvocationConfig is the fully resolved configuration for one model call:
// feature defaults merged with the user's personalization.
type InvocationConfig struct {
	Model         string
	Temperature   float64
	MaxTokens     int
	SystemMessage string
}

// Resolve merges a feature's baseline with an optional user profile.
//
// Model, temperature, and token budget always come from the feature
// definition. The profile contributes only its per-feature system message
// override and its language directive. Resolve is total: any feature name
// and any profile, including nil, yields a usable configuration. A nil
// profile simply means no personalization.
func Resolve(feature Feature, profile *types.UserProfile) InvocationConfig {
	def := DefinitionFor(feature)

	cfg := InvocationConfig{
		Model:         def.Model,
		Temperature:   def.Temperature,
		MaxTokens:     def.MaxTokens,
		SystemMessage: def.SystemMessage,
	}

	if profile == nil {
		return cfg
	}

	if override, ok := profile.SystemMessageFor(string(feature)); ok {
		cfg.SystemMessage = override
	}

	// A profile always carries a language directive; missing or unsupported
	// codes degrade to the English directive.
	cfg.SystemMessage += "\n\nIMPORTANT: " + InstructionFor(profile.LanguageCode)

	return cfg
}

// BuildMessages assembles the ordered message list for a model call: the
// resolved system message first, then any prior turns, then the current user
// input. Pure construction, no I/O.
func BuildMessages(feature Feature, userInput string, profile *types.UserProfile, history []llm.Message) []llm.Message {
	cfg := Resolve(feature, profile)

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: cfg.SystemMessage})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: userInput})

	return messages
}
