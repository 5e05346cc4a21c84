package aiconfig

import (
	"strings"
	"testing"

	"github.com/brain-time/coach/internal/llm"
	"github.com/brain-time/coach/pkg/types"
)

func TestDefinitionFor(t *testing.T) {
	t.Run("known features", func(t *testing.T) {
		cases := []struct {
			feature     Feature
			model       string
			temperature float64
			maxTokens   int
		}{
			{FeatureDailyPlanning, "llama-3.3-70b-versatile", 0.4, 500},
			{FeatureWeeklyReview, "llama-3.1-70b-versatile", 0.8, 600},
			{FeatureQuickTask, "llama-3.1-8b-instant", 0.5, 150},
			{FeatureMotivational, "llama-3.1-8b-instant", 1.1, 200},
			{FeatureOnboarding, "llama-3.3-70b-versatile", 0.7, 800},
		}

		for _, tc := range cases {
			t.Run(string(tc.feature), func(t *testing.T) {
				def := DefinitionFor(tc.feature)
				if def.Model != tc.model {
					t.Errorf("model = %q, want %q", def.Model, tc.model)
				}
				if def.Temperature != tc.temperature {
					t.Errorf("temperature = %v, want %v", def.Temperature, tc.temperature)
				}
				if def.MaxTokens != tc.maxTokens {
					t.Errorf("max tokens = %d, want %d", def.MaxTokens, tc.maxTokens)
				}
				if def.SystemMessage == "" {
					t.Error("expected a non-empty system message")
				}
			})
		}
	})

	t.Run("unknown feature resolves like quick task", func(t *testing.T) {
		unknown := DefinitionFor(Feature("does_not_exist"))
		quick := DefinitionFor(FeatureQuickTask)
		if unknown != quick {
			t.Errorf("unknown feature = %+v, want quick task definition %+v", unknown, quick)
		}
	})
}

func TestResolve(t *testing.T) {
	profile := &types.UserProfile{
		SystemMessages: map[string]string{
			"daily_planning": "You coach a night-shift nurse.",
		},
		LanguageCode: "de",
	}

	t.Run("nil profile yields feature defaults", func(t *testing.T) {
		cfg := Resolve(FeatureDailyPlanning, nil)
		def := DefinitionFor(FeatureDailyPlanning)
		if cfg.SystemMessage != def.SystemMessage {
			t.Error("expected the default system message unchanged")
		}
		if cfg.Model != def.Model || cfg.Temperature != def.Temperature || cfg.MaxTokens != def.MaxTokens {
			t.Error("expected feature invocation parameters unchanged")
		}
	})

	t.Run("profile override replaces the system message", func(t *testing.T) {
		cfg := Resolve(FeatureDailyPlanning, profile)
		if !strings.HasPrefix(cfg.SystemMessage, "You coach a night-shift nurse.") {
			t.Errorf("expected override to lead the system message, got %q", cfg.SystemMessage)
		}
	})

	t.Run("profile never changes invocation parameters", func(t *testing.T) {
		cfg := Resolve(FeatureDailyPlanning, profile)
		def := DefinitionFor(FeatureDailyPlanning)
		if cfg.Model != def.Model || cfg.Temperature != def.Temperature || cfg.MaxTokens != def.MaxTokens {
			t.Error("profile must not affect model, temperature, or token budget")
		}
	})

	t.Run("language directive is appended", func(t *testing.T) {
		cfg := Resolve(FeatureDailyPlanning, profile)
		if !strings.HasSuffix(cfg.SystemMessage, "\n\nIMPORTANT: Antworte auf Deutsch.") {
			t.Errorf("expected German directive suffix, got %q", cfg.SystemMessage)
		}
	})

	t.Run("feature without override keeps its default plus directive", func(t *testing.T) {
		cfg := Resolve(FeatureQuickTask, profile)
		def := DefinitionFor(FeatureQuickTask)
		if !strings.HasPrefix(cfg.SystemMessage, def.SystemMessage) {
			t.Error("expected the feature default to lead the system message")
		}
		if !strings.Contains(cfg.SystemMessage, "IMPORTANT:") {
			t.Error("expected language directive for profiled calls")
		}
	})

	t.Run("unsupported language degrades to English", func(t *testing.T) {
		p := &types.UserProfile{LanguageCode: "xx"}
		cfg := Resolve(FeatureQuickTask, p)
		if !strings.HasSuffix(cfg.SystemMessage, "Respond in English.") {
			t.Errorf("expected English directive fallback, got %q", cfg.SystemMessage)
		}
	})
}

func TestBuildMessages(t *testing.T) {
	history := []llm.Message{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
	}

	msgs := BuildMessages(FeatureQuickTask, "current question", nil, history)

	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(msgs))
	}
	if msgs[0].Role != "system" {
		t.Errorf("first message role = %q, want system", msgs[0].Role)
	}
	if msgs[1].Content != "earlier question" || msgs[2].Content != "earlier answer" {
		t.Error("history must keep its order between system and user turns")
	}
	last := msgs[len(msgs)-1]
	if last.Role != "user" || last.Content != "current question" {
		t.Errorf("last message = %+v, want the current user input", last)
	}
}

func TestLanguages(t *testing.T) {
	t.Run("name to code", func(t *testing.T) {
		cases := map[string]string{
			"English":          "en",
			"Deutsch":          "de",
			"العربية (Arabic)": "ar",
			"Français":         "fr",
			"Klingon":          "en",
			"":                 "en",
		}
		for name, want := range cases {
			if got := CodeForName(name); got != want {
				t.Errorf("CodeForName(%q) = %q, want %q", name, got, want)
			}
		}
	})

	t.Run("arabic is right to left", func(t *testing.T) {
		if LanguageFor("ar").Direction != "rtl" {
			t.Error("expected rtl direction for Arabic")
		}
	})

	t.Run("supported languages", func(t *testing.T) {
		langs := SupportedLanguages()
		if len(langs) != 4 {
			t.Fatalf("expected 4 languages, got %d", len(langs))
		}
		if langs[0].Code != "en" {
			t.Errorf("expected English first, got %q", langs[0].Code)
		}
	})
}

func TestOnboardingQuestions(t *testing.T) {
	if len(OnboardingQuestions) != 7 {
		t.Fatalf("expected 7 questions, got %d", len(OnboardingQuestions))
	}

	seen := map[string]bool{}
	for _, q := range OnboardingQuestions {
		if q.ID == "" {
			t.Error("question with empty ID")
		}
		if seen[q.ID] {
			t.Errorf("duplicate question ID %q", q.ID)
		}
		seen[q.ID] = true

		// English text is the UI rendering fallback and must always exist.
		if q.Text["en"] == "" {
			t.Errorf("question %q has no English text", q.ID)
		}
	}

	for _, id := range []string{"language", "goals"} {
		found := false
		for _, q := range OnboardingQuestions {
			if q.ID == id {
				found = q.Required
			}
		}
		if !found {
			t.Errorf("expected a required %q question", id)
		}
	}
}
