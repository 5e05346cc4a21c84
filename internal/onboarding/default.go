package onboarding

import (
	"fmt"
	"strings"
	"time"

	"github.com/brain-time/coach/internal/aiconfig"
	"github.com/brain-time/coach/pkg/types"
)

const defaultWeeklyReviewMessage = `You are a reflective productivity coach.

Provide:
- Celebration of wins
- Pattern identification
- Constructive suggestions
- Encouragement for next week`

// DefaultProfile builds the deterministic fallback profile used when AI
// generation is unavailable or produces garbage. It is always valid.
func DefaultProfile(answers types.OnboardingAnswers) *types.UserProfile {
	a := normalized(answers)

	dailyMessage := fmt.Sprintf(`You are a productivity coach for a %s.

Focus on these goals: %s.

Provide:
- Realistic time-blocked schedules
- Practical, actionable advice
- Encouragement and support
- Clear structure with specific times`, a.Role, strings.Join(a.Goals, ", "))

	focus := a.Goals
	if len(focus) > 3 {
		focus = focus[:3]
	}
	if len(focus) == 0 {
		focus = []string{"productivity", "balance", "growth"}
	}

	return &types.UserProfile{
		SystemMessages: map[string]string{
			string(aiconfig.FeatureDailyPlanning): dailyMessage,
			string(aiconfig.FeatureWeeklyReview):  defaultWeeklyReviewMessage,
		},
		CoachingTone:   "encouraging, practical",
		KeyFocusAreas:  focus,
		TimeBlockSize:  30,
		IslamicLevel:   types.EmphasisMedium,
		LanguageCode:   aiconfig.CodeForName(a.Language),
		OnboardingData: answers,
		CreatedAt:      time.Now(),
		IsDefault:      true,
	}
}
