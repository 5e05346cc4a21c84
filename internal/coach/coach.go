// Package coach wires profile generation, configuration resolution, the
// LLM provider, and the store into the user-facing coaching operations.
package coach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/brain-time/coach/internal/aiconfig"
	"github.com/brain-time/coach/internal/data"
	"github.com/brain-time/coach/internal/llm"
	"github.com/brain-time/coach/internal/onboarding"
	"github.com/brain-time/coach/pkg/types"
)

// reviewPlanWindow is how many recent daily plans feed a weekly review.
const reviewPlanWindow = 7

// planExcerptLen bounds how much of each plan is quoted back to the model.
const planExcerptLen = 300

// Service exposes the coaching operations backed by a store and a provider.
type Service struct {
	store     *data.Store
	provider  llm.Provider
	generator *onboarding.Generator
}

// New creates a coaching service.
func New(store *data.Store, provider llm.Provider) *Service {
	return &Service{
		store:     store,
		provider:  provider,
		generator: onboarding.NewGenerator(provider),
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// ONBOARDING
// ═══════════════════════════════════════════════════════════════════════════════

// Onboard generates a profile from questionnaire answers and makes it the
// active one. Generation itself cannot fail (it degrades to the default
// profile), so an error here means the profile could not be persisted.
func (s *Service) Onboard(ctx context.Context, answers types.OnboardingAnswers) (*types.UserProfile, error) {
	profile := s.generator.Generate(ctx, answers)
	if !onboarding.Validate(profile) {
		return nil, fmt.Errorf("generated profile failed validation")
	}

	id, err := s.store.SaveProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	profile.ID = id
	profile.IsActive = true

	log.Info().
		Int64("profile_id", id).
		Bool("is_default", profile.IsDefault).
		Str("language", profile.LanguageCode).
		Msg("Onboarding complete")

	return profile, nil
}

// ActiveProfile returns the current active profile, or an error telling the
// user to onboard when none exists yet.
func (s *Service) ActiveProfile(ctx context.Context) (*types.UserProfile, error) {
	profile, err := s.store.ActiveProfile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no active profile, run onboarding first")
	}
	return profile, nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// DAILY PLANNING
// ═══════════════════════════════════════════════════════════════════════════════

// GenerateDailyPlan asks the model for a time-blocked schedule for one date
// and persists it. Regenerating for a date a plan already exists for simply
// records a newer plan; nothing is deleted.
func (s *Service) GenerateDailyPlan(ctx context.Context, date string, availableHours float64, extraContext string) (*types.DailyPlan, error) {
	profile, err := s.ActiveProfile(ctx)
	if err != nil {
		return nil, err
	}

	prompt := planPrompt(profile, date, availableHours, extraContext)
	messages := aiconfig.BuildMessages(aiconfig.FeatureDailyPlanning, prompt, profile, nil)
	cfg := aiconfig.Resolve(aiconfig.FeatureDailyPlanning, profile)

	resp, err := s.provider.Chat(ctx, &llm.ChatRequest{
		Model:       cfg.Model,
		Messages:    messages,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate daily plan: %w", err)
	}

	id, err := s.store.SaveDailyPlan(ctx, profile.ID, date, resp.Content, availableHours)
	if err != nil {
		return nil, fmt.Errorf("save daily plan: %w", err)
	}

	log.Info().
		Int64("plan_id", id).
		Str("date", date).
		Float64("hours", availableHours).
		Int("tokens", resp.TokensUsed).
		Msg("Daily plan generated")

	return &types.DailyPlan{
		ID:             id,
		UserID:         profile.ID,
		Date:           date,
		Content:        resp.Content,
		AvailableHours: availableHours,
		CreatedAt:      time.Now(),
	}, nil
}

// PlanFor returns the current plan for a date, nil when none exists.
func (s *Service) PlanFor(ctx context.Context, date string) (*types.DailyPlan, error) {
	profile, err := s.ActiveProfile(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.PlanFor(ctx, profile.ID, date)
}

// ═══════════════════════════════════════════════════════════════════════════════
// WEEKLY REVIEW
// ═══════════════════════════════════════════════════════════════════════════════

// GenerateWeeklyReview summarizes the most recent daily plans, folds in the
// user's own reflections, and asks the model for a retrospective. It fails
// when no plans exist yet since there is nothing to review.
func (s *Service) GenerateWeeklyReview(ctx context.Context, weekStart, weekEnd, reflections string) (*types.WeeklyReview, error) {
	profile, err := s.ActiveProfile(ctx)
	if err != nil {
		return nil, err
	}

	plans, err := s.store.RecentPlans(ctx, profile.ID, reviewPlanWindow)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("no plans recorded yet, generate some daily plans first")
	}

	prompt := reviewPrompt(plans, reflections)
	messages := aiconfig.BuildMessages(aiconfig.FeatureWeeklyReview, prompt, profile, nil)
	cfg := aiconfig.Resolve(aiconfig.FeatureWeeklyReview, profile)

	resp, err := s.provider.Chat(ctx, &llm.ChatRequest{
		Model:       cfg.Model,
		Messages:    messages,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate weekly review: %w", err)
	}

	id, err := s.store.SaveWeeklyReview(ctx, profile.ID, weekStart, weekEnd, resp.Content)
	if err != nil {
		return nil, fmt.Errorf("save weekly review: %w", err)
	}

	log.Info().
		Int64("review_id", id).
		Str("week_start", weekStart).
		Int("plans_reviewed", len(plans)).
		Msg("Weekly review generated")

	return &types.WeeklyReview{
		ID:        id,
		UserID:    profile.ID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Content:   resp.Content,
		CreatedAt: time.Now(),
	}, nil
}

// WeekBounds returns the Monday and Sunday of the week containing t,
// formatted as YYYY-MM-DD.
func WeekBounds(t time.Time) (start, end string) {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	monday := t.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format("2006-01-02"), sunday.Format("2006-01-02")
}

// ═══════════════════════════════════════════════════════════════════════════════
// LIGHTWEIGHT FEATURES
// ═══════════════════════════════════════════════════════════════════════════════

// QuickTask gives fast, practical help with a single task. It works with or
// without a profile; personalization applies when one is active.
func (s *Service) QuickTask(ctx context.Context, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("task description is empty")
	}
	return s.lightweight(ctx, aiconfig.FeatureQuickTask, input)
}

// Motivate returns a short motivational boost. An empty input asks for
// general encouragement.
func (s *Service) Motivate(ctx context.Context, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		input = "I need some motivation to get through today."
	}
	return s.lightweight(ctx, aiconfig.FeatureMotivational, input)
}

func (s *Service) lightweight(ctx context.Context, feature aiconfig.Feature, input string) (string, error) {
	// Unlike planning, these features do not require onboarding.
	profile, err := s.store.ActiveProfile(ctx)
	if err != nil {
		return "", err
	}

	messages := aiconfig.BuildMessages(feature, input, profile, nil)
	cfg := aiconfig.Resolve(feature, profile)

	resp, err := s.provider.Chat(ctx, &llm.ChatRequest{
		Model:       cfg.Model,
		Messages:    messages,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", feature, err)
	}
	return resp.Content, nil
}
