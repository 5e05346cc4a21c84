package onboarding

import (
	"github.com/rs/zerolog/log"

	"github.com/brain-time/coach/internal/aiconfig"
	"github.com/brain-time/coach/pkg/types"
)

// Validate reports whether a profile carries everything the coach needs to
// personalize responses. Profiles from Generate always pass; the check
// guards profiles loaded from storage or edited by hand.
func Validate(p *types.UserProfile) bool {
	if p == nil {
		log.Warn().Msg("Profile validation failed: profile is nil")
		return false
	}

	for _, feature := range []aiconfig.Feature{aiconfig.FeatureDailyPlanning, aiconfig.FeatureWeeklyReview} {
		if _, ok := p.SystemMessageFor(string(feature)); !ok {
			log.Warn().Str("feature", string(feature)).Msg("Profile validation failed: missing system message")
			return false
		}
	}
	if p.CoachingTone == "" {
		log.Warn().Msg("Profile validation failed: missing coaching tone")
		return false
	}
	if len(p.KeyFocusAreas) == 0 {
		log.Warn().Msg("Profile validation failed: missing key focus areas")
		return false
	}
	if p.TimeBlockSize <= 0 {
		log.Warn().Msg("Profile validation failed: missing time block size")
		return false
	}
	if p.OnboardingData.IsZero() {
		log.Warn().Msg("Profile validation failed: missing onboarding data")
		return false
	}

	return true
}
