// Package aiconfig centralizes model selection, sampling parameters, system
// messages, and personalization for every AI interaction in the coach.
package aiconfig

// Feature identifies one AI-backed capability of the coach. Each feature has
// its own model, temperature, token budget, and default system message.
type Feature string

const (
	FeatureDailyPlanning Feature = "daily_planning"
	FeatureWeeklyReview  Feature = "weekly_review"
	FeatureQuickTask     Feature = "quick_task"
	FeatureMotivational  Feature = "motivational"
	FeatureOnboarding    Feature = "onboarding"
)

// FeatureDefinition is the static invocation baseline for a feature.
// A user profile can override the system message but never the model,
// temperature, or token budget, keeping cost and latency predictable
// per feature.
type FeatureDefinition struct {
	Model         string
	Temperature   float64
	MaxTokens     int
	SystemMessage string
}

var models = map[Feature]string{
	FeatureDailyPlanning: "llama-3.3-70b-versatile",
	FeatureWeeklyReview:  "llama-3.1-70b-versatile", // long context for week data
	FeatureQuickTask:     "llama-3.1-8b-instant",
	FeatureMotivational:  "llama-3.1-8b-instant",
	FeatureOnboarding:    "llama-3.3-70b-versatile", // high quality for profile generation
}

var temperatures = map[Feature]float64{
	FeatureDailyPlanning: 0.4, // consistent, structured output
	FeatureWeeklyReview:  0.8, // analytical but creative suggestions
	FeatureQuickTask:     0.5,
	FeatureMotivational:  1.1, // creative and inspiring
	FeatureOnboarding:    0.7,
}

var maxTokens = map[Feature]int{
	FeatureDailyPlanning: 500,
	FeatureWeeklyReview:  600,
	FeatureQuickTask:     150,
	FeatureMotivational:  200,
	FeatureOnboarding:    800,
}

var systemMessages = map[Feature]string{
	FeatureDailyPlanning: `You are an Islamic productivity coach specializing in time management for busy individuals.

Your responses should:
- Create realistic, time-blocked schedules
- Prioritize spiritual growth (Quran, prayer times)
- Acknowledge real-world constraints
- Be encouraging and practical
- Format as a clear schedule with times`,

	FeatureWeeklyReview: `You are a reflective productivity coach analyzing weekly progress.

Your responses should:
- Start by celebrating wins (even small ones)
- Identify patterns in productivity
- Suggest 2-3 specific adjustments for next week
- Be constructive and encouraging, never critical
- Reference principles of continuous improvement`,

	FeatureQuickTask: `You are a helpful productivity assistant for quick questions.

Keep responses:
- Brief (2-3 sentences maximum)
- Immediately actionable
- Positive and encouraging`,

	FeatureMotivational: `You are an Islamic motivational speaker focused on productivity.

Provide:
- A relevant Quranic verse or Hadith (with translation)
- Brief reflection on its meaning for productivity
- One actionable reminder
- Keep total response under 100 words`,
}

// DefinitionFor returns the invocation baseline for a feature. It is a total
// function: unrecognized feature names resolve to the quick-task definition
// instead of failing, so callers never branch on "unknown feature".
func DefinitionFor(feature Feature) FeatureDefinition {
	if _, known := models[feature]; !known {
		feature = FeatureQuickTask
	}
	def := FeatureDefinition{
		Model:       models[feature],
		Temperature: temperatures[feature],
		MaxTokens:   maxTokens[feature],
	}
	// Features without their own system message (onboarding) inherit the
	// quick-task message.
	if msg, ok := systemMessages[feature]; ok {
		def.SystemMessage = msg
	} else {
		def.SystemMessage = systemMessages[FeatureQuickTask]
	}
	return def
}
