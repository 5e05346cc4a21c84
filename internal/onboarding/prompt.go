package onboarding

import (
	"fmt"
	"strings"

	"github.com/brain-time/coach/internal/aiconfig"
	"github.com/brain-time/coach/pkg/types"
)

// normalized fills neutral values for answers the user skipped, so the
// prompt never shows an empty field to the model.
func normalized(a types.OnboardingAnswers) types.OnboardingAnswers {
	if a.Language == "" {
		a.Language = "English"
	}
	if a.Role == "" {
		a.Role = "individual"
	}
	if a.AvailableTime == "" {
		a.AvailableTime = "varies"
	}
	if a.Challenges == "" {
		a.Challenges = "general productivity"
	}
	if a.IslamicPractice == "" {
		a.IslamicPractice = "Prefer not to say"
	}
	if a.MotivationStyle == "" {
		a.MotivationStyle = "Mix of everything"
	}
	return a
}

// buildPrompt renders the profile-generation instruction for the model.
func buildPrompt(answers types.OnboardingAnswers) string {
	a := normalized(answers)
	languageCode := aiconfig.CodeForName(a.Language)
	languageInstruction := aiconfig.InstructionFor(languageCode)

	return fmt.Sprintf(`Based on this user information, create a personalized productivity coaching profile.

USER INFORMATION:
- Language: %s
- Role: %s
- Goals: %s
- Available Time: %s
- Main Challenge: %s
- Islamic Practice Level: %s
- Motivation Style: %s

TASK:
Generate a JSON response with these fields:

1. "system_message_daily_planning": A personalized system message for daily planning (150-200 words)
   - Should address their specific role and challenges
   - Acknowledge their time constraints
   - Focus on their stated goals
   - Use appropriate Islamic references based on their practice level

2. "system_message_weekly_review": A personalized system message for weekly reviews (100-150 words)
   - Should focus on their motivation style
   - Encourage based on their challenges
   - Reference their goals

3. "coaching_tone": Best coaching tone for this user (2-3 words, e.g., "encouraging, practical")

4. "key_focus_areas": Top 3 areas to emphasize based on their goals (array of strings)

5. "time_block_size": Recommended time block size in minutes (15, 30, 45, or 60)
   - Base this on their available time and role

6. "islamic_emphasis": Level of Islamic content to include ("high", "medium", "low", "minimal")
   - Base this on their islamic_practice level

IMPORTANT:
- %s
- Respond ONLY with valid JSON
- No markdown, no code blocks, just pure JSON
- Make it specific to their situation`,
		a.Language,
		a.Role,
		strings.Join(a.Goals, ", "),
		a.AvailableTime,
		a.Challenges,
		a.IslamicPractice,
		a.MotivationStyle,
		languageInstruction,
	)
}
