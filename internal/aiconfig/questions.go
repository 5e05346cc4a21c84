package aiconfig

// QuestionType distinguishes single-choice from multi-choice questions.
type QuestionType string

const (
	QuestionSelect      QuestionType = "select"
	QuestionMultiSelect QuestionType = "multiselect"
)

// Question is one onboarding questionnaire entry. The engine only defines
// the data shape; how questions are presented is the UI's concern.
type Question struct {
	ID        string
	Text      map[string]string // language code -> question text
	Type      QuestionType
	Options   []string
	Required  bool
	AIContext string // label used when feeding the answer to profile generation
}

// OnboardingQuestions is the fixed questionnaire shown once per user.
// Language and goals are the only required answers the engine depends on.
var OnboardingQuestions = []Question{
	{
		ID: "language",
		Text: map[string]string{
			"en": "Which language would you like to use?",
			"de": "Welche Sprache möchtest du verwenden?",
			"ar": "ما هي اللغة التي تريد استخدامها؟",
		},
		Type:      QuestionSelect,
		Options:   []string{"English", "Deutsch", "العربية (Arabic)", "Français"},
		Required:  true,
		AIContext: "preferred_language",
	},
	{
		ID: "role",
		Text: map[string]string{
			"en": "What best describes you?",
			"de": "Was beschreibt dich am besten?",
		},
		Type: QuestionSelect,
		Options: []string{
			"Parent with young children",
			"Student",
			"Working professional",
			"Entrepreneur",
			"Homemaker",
			"Other",
		},
		Required:  true,
		AIContext: "user_role",
	},
	{
		ID: "goals",
		Text: map[string]string{
			"en": "What are your main goals? (Select all that apply)",
			"de": "Was sind deine Hauptziele? (Wähle alle zutreffenden)",
		},
		Type: QuestionMultiSelect,
		Options: []string{
			"Quran memorization/study",
			"Islamic knowledge",
			"Career development",
			"Family time",
			"Personal projects",
			"Health & fitness",
			"Financial goals",
		},
		Required:  true,
		AIContext: "primary_goals",
	},
	{
		ID: "available_time",
		Text: map[string]string{
			"en": "How much focused time do you typically have per day?",
			"de": "Wie viel fokussierte Zeit hast du normalerweise pro Tag?",
		},
		Type: QuestionSelect,
		Options: []string{
			"Less than 1 hour",
			"1-2 hours",
			"2-4 hours",
			"4+ hours",
			"Varies greatly",
		},
		Required:  true,
		AIContext: "time_availability",
	},
	{
		ID: "challenges",
		Text: map[string]string{
			"en": "What's your biggest productivity challenge?",
			"de": "Was ist deine größte Produktivitäts-Herausforderung?",
		},
		Type: QuestionSelect,
		Options: []string{
			"Finding time with kids",
			"Staying consistent",
			"Prioritizing tasks",
			"Avoiding distractions",
			"Balancing multiple roles",
			"Morning routine",
			"Evening routine",
		},
		AIContext: "main_challenge",
	},
	{
		ID: "islamic_practice",
		Text: map[string]string{
			"en": "How would you describe your Islamic practice?",
			"de": "Wie würdest du deine islamische Praxis beschreiben?",
		},
		Type: QuestionSelect,
		Options: []string{
			"Beginner - learning the basics",
			"Practicing - working on consistency",
			"Committed - established routine",
			"Prefer not to say",
		},
		AIContext: "islamic_level",
	},
	{
		ID: "motivation_style",
		Text: map[string]string{
			"en": "What motivates you most?",
			"de": "Was motiviert dich am meisten?",
		},
		Type: QuestionSelect,
		Options: []string{
			"Spiritual reminders (Quran, Hadith)",
			"Practical tips and strategies",
			"Success stories",
			"Accountability and tracking",
			"Mix of everything",
		},
		AIContext: "motivation_preference",
	},
}
