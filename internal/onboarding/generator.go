// Package onboarding turns questionnaire answers into a personalized
// coaching profile. Generation asks the LLM for a tailored profile and
// falls back to a deterministic default when anything goes wrong, so a
// caller always ends up with a usable profile.
package onboarding

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/brain-time/coach/internal/aiconfig"
	"github.com/brain-time/coach/internal/llm"
	"github.com/brain-time/coach/pkg/types"
)

// generatorSystemPrompt pins the model to raw JSON output.
const generatorSystemPrompt = "You are an expert at creating personalized productivity coaching profiles. Always respond with valid JSON only, no markdown formatting."

// Generator produces user profiles from onboarding answers.
type Generator struct {
	provider llm.Provider
}

// NewGenerator creates a profile generator backed by the given provider.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// generatedProfile is the shape the model is asked to return. Unknown
// fields in the response are ignored on decode.
type generatedProfile struct {
	SystemMessageDailyPlanning string   `json:"system_message_daily_planning"`
	SystemMessageWeeklyReview  string   `json:"system_message_weekly_review"`
	CoachingTone               string   `json:"coaching_tone"`
	KeyFocusAreas              []string `json:"key_focus_areas"`
	TimeBlockSize              int      `json:"time_block_size"`
	IslamicEmphasis            string   `json:"islamic_emphasis"`
}

// complete reports whether the model returned every field the coach needs.
func (g generatedProfile) complete() bool {
	return g.SystemMessageDailyPlanning != "" &&
		g.SystemMessageWeeklyReview != "" &&
		g.CoachingTone != "" &&
		len(g.KeyFocusAreas) > 0 &&
		g.TimeBlockSize > 0
}

// Generate creates a personalized profile from onboarding answers. It never
// returns an error: any generation failure (provider down, malformed JSON,
// incomplete response) degrades to the deterministic default profile.
func (g *Generator) Generate(ctx context.Context, answers types.OnboardingAnswers) *types.UserProfile {
	requestID := uuid.New().String()
	def := aiconfig.DefinitionFor(aiconfig.FeatureOnboarding)

	log.Info().
		Str("request_id", requestID).
		Str("model", def.Model).
		Str("language", answers.Language).
		Msg("Generating personalized profile")

	resp, err := g.provider.Chat(ctx, &llm.ChatRequest{
		Model:        def.Model,
		SystemPrompt: generatorSystemPrompt,
		Messages: []llm.Message{
			{Role: "user", Content: buildPrompt(answers)},
		},
		MaxTokens:   def.MaxTokens,
		Temperature: def.Temperature,
	})
	if err != nil {
		log.Warn().
			Str("request_id", requestID).
			Err(err).
			Msg("Profile generation failed, using default profile")
		return DefaultProfile(answers)
	}

	content := stripCodeFences(resp.Content)

	var gen generatedProfile
	if err := json.Unmarshal([]byte(content), &gen); err != nil {
		log.Warn().
			Str("request_id", requestID).
			Err(err).
			Str("raw", truncate(content, 200)).
			Msg("Profile response is not valid JSON, using default profile")
		return DefaultProfile(answers)
	}
	if !gen.complete() {
		log.Warn().
			Str("request_id", requestID).
			Msg("Profile response is missing required fields, using default profile")
		return DefaultProfile(answers)
	}

	emphasis := types.EmphasisLevel(gen.IslamicEmphasis)
	if emphasis == "" {
		emphasis = types.EmphasisMedium
	}

	profile := &types.UserProfile{
		SystemMessages: map[string]string{
			string(aiconfig.FeatureDailyPlanning): gen.SystemMessageDailyPlanning,
			string(aiconfig.FeatureWeeklyReview):  gen.SystemMessageWeeklyReview,
		},
		CoachingTone:   gen.CoachingTone,
		KeyFocusAreas:  gen.KeyFocusAreas,
		TimeBlockSize:  gen.TimeBlockSize,
		IslamicLevel:   emphasis,
		LanguageCode:   aiconfig.CodeForName(answers.Language),
		OnboardingData: answers,
		CreatedAt:      time.Now(),
	}

	log.Info().
		Str("request_id", requestID).
		Str("tone", profile.CoachingTone).
		Int("time_block", profile.TimeBlockSize).
		Int("tokens", resp.TokensUsed).
		Msg("Personalized profile generated")

	return profile
}

// stripCodeFences removes a markdown code block wrapper if the model added
// one despite instructions, with or without a "json" language tag.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	parts := strings.Split(content, "```")
	if len(parts) < 2 {
		return content
	}
	inner := parts[1]
	inner = strings.TrimPrefix(inner, "json")
	return strings.TrimSpace(inner)
}

// truncate shortens a string to at most n characters for log output,
// counting runes so multibyte text is never cut mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
