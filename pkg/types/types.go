// Package types defines shared types used across all coach modules.
package types

import "time"

// ═══════════════════════════════════════════════════════════════════════════════
// ONBOARDING TYPES
// ═══════════════════════════════════════════════════════════════════════════════

// OnboardingAnswers holds a user's answers to the onboarding questionnaire.
// Language and Goals are the only fields a valid submission must carry; the
// rest default to neutral values during profile generation. Unknown fields in
// stored answer documents are ignored on decode.
type OnboardingAnswers struct {
	Language        string   `json:"language"`
	Role            string   `json:"role,omitempty"`
	Goals           []string `json:"goals"`
	AvailableTime   string   `json:"available_time,omitempty"`
	Challenges      string   `json:"challenges,omitempty"`
	IslamicPractice string   `json:"islamic_practice,omitempty"`
	MotivationStyle string   `json:"motivation_style,omitempty"`
}

// IsZero reports whether no answer has been recorded at all.
func (a OnboardingAnswers) IsZero() bool {
	return a.Language == "" && a.Role == "" && len(a.Goals) == 0 &&
		a.AvailableTime == "" && a.Challenges == "" &&
		a.IslamicPractice == "" && a.MotivationStyle == ""
}

// ═══════════════════════════════════════════════════════════════════════════════
// PROFILE TYPES
// ═══════════════════════════════════════════════════════════════════════════════

// EmphasisLevel controls how much Islamic content the coach weaves into
// its responses.
type EmphasisLevel string

const (
	EmphasisHigh    EmphasisLevel = "high"
	EmphasisMedium  EmphasisLevel = "medium"
	EmphasisLow     EmphasisLevel = "low"
	EmphasisMinimal EmphasisLevel = "minimal"
)

// UserProfile is the durable personalization unit produced by onboarding.
// SystemMessages carries per-feature instruction overrides keyed by feature
// name; a missing key means the feature's default instruction applies.
type UserProfile struct {
	// ID is assigned by the store on first save and immutable afterwards.
	// Zero means not yet persisted.
	ID int64 `json:"-"`

	SystemMessages map[string]string `json:"system_messages,omitempty"`
	CoachingTone   string            `json:"coaching_tone"`
	KeyFocusAreas  []string          `json:"key_focus_areas"`
	TimeBlockSize  int               `json:"time_block_size"`
	IslamicLevel   EmphasisLevel     `json:"islamic_emphasis"`
	LanguageCode   string            `json:"language_code"`

	// OnboardingData retains the original answers for audit and redo.
	OnboardingData OnboardingAnswers `json:"onboarding_data"`

	CreatedAt time.Time `json:"created_at"`

	// IsDefault marks a profile produced by the deterministic fallback
	// rather than by AI generation.
	IsDefault bool `json:"is_default,omitempty"`

	// IsActive mirrors the store's single-active-profile flag on read.
	IsActive bool `json:"-"`
	// UpdatedAt is maintained by the store.
	UpdatedAt time.Time `json:"-"`
}

// SystemMessageFor returns the personalized instruction for a feature name,
// with ok=false when no override exists.
func (p *UserProfile) SystemMessageFor(feature string) (string, bool) {
	if p == nil || p.SystemMessages == nil {
		return "", false
	}
	msg, ok := p.SystemMessages[feature]
	return msg, ok && msg != ""
}

// ═══════════════════════════════════════════════════════════════════════════════
// ARTIFACT TYPES
// ═══════════════════════════════════════════════════════════════════════════════

// DailyPlan is an AI-generated, time-blocked schedule for one calendar date.
// Plans are append-only: regenerating for the same date inserts a new row and
// the newest row is the current plan.
type DailyPlan struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Date           string    `json:"date"` // YYYY-MM-DD
	Content        string    `json:"plan_content"`
	AvailableHours float64   `json:"available_hours"`
	CreatedAt      time.Time `json:"created_at"`
}

// WeeklyReview is an AI-generated retrospective over a week of daily plans.
// Same append-only lifecycle as DailyPlan, keyed loosely by owner+week start.
type WeeklyReview struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	WeekStart string    `json:"week_start"` // YYYY-MM-DD
	WeekEnd   string    `json:"week_end"`   // YYYY-MM-DD
	Content   string    `json:"review_content"`
	CreatedAt time.Time `json:"created_at"`
}

// ═══════════════════════════════════════════════════════════════════════════════
// STORE OBSERVABILITY
// ═══════════════════════════════════════════════════════════════════════════════

// StoreStats is a read-only aggregate over the persistence store.
type StoreStats struct {
	TotalProfiles  int   `json:"total_profiles"`
	ActiveProfiles int   `json:"active_profiles"`
	DailyPlans     int   `json:"total_daily_plans"`
	WeeklyReviews  int   `json:"total_weekly_reviews"`
	SizeBytes      int64 `json:"db_size_bytes"`
}
