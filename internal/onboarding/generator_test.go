package onboarding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brain-time/coach/internal/llm"
	"github.com/brain-time/coach/pkg/types"
)

func testAnswers() types.OnboardingAnswers {
	return types.OnboardingAnswers{
		Language:        "Deutsch",
		Role:            "Parent with young children",
		Goals:           []string{"Quran memorization/study", "Career development", "Family time"},
		AvailableTime:   "1-2 hours",
		Challenges:      "Finding time with kids",
		IslamicPractice: "Practicing - working on consistency",
		MotivationStyle: "Mix of everything",
	}
}

// stubGroqServer returns an httptest server that answers every chat
// completion request with the given content.
func stubGroqServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"model": "llama-3.3-70b-versatile",
			"choices": []map[string]interface{}{
				{
					"message":       map[string]string{"role": "assistant", "content": content},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]int{"prompt_tokens": 100, "completion_tokens": 200, "total_tokens": 300},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func providerFor(srv *httptest.Server) llm.Provider {
	return llm.NewGroqProvider(&llm.ProviderConfig{
		Endpoint: srv.URL,
		APIKey:   "test-key",
	})
}

func validGeneratedJSON() string {
	body, _ := json.Marshal(map[string]interface{}{
		"system_message_daily_planning": "You are a coach for a busy parent. Plan around family obligations.",
		"system_message_weekly_review":  "You review weeks with warmth and honesty.",
		"coaching_tone":                 "warm, direct",
		"key_focus_areas":               []string{"Quran", "Career", "Family"},
		"time_block_size":               45,
		"islamic_emphasis":              "high",
	})
	return string(body)
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("maps a well-formed response", func(t *testing.T) {
		srv := stubGroqServer(t, validGeneratedJSON())
		defer srv.Close()

		profile := NewGenerator(providerFor(srv)).Generate(ctx, testAnswers())
		require.NotNil(t, profile)

		assert.False(t, profile.IsDefault)
		assert.Equal(t, "warm, direct", profile.CoachingTone)
		assert.Equal(t, 45, profile.TimeBlockSize)
		assert.Equal(t, types.EmphasisHigh, profile.IslamicLevel)
		assert.Equal(t, "de", profile.LanguageCode)
		assert.Equal(t, testAnswers(), profile.OnboardingData)

		daily, ok := profile.SystemMessageFor("daily_planning")
		require.True(t, ok)
		assert.Contains(t, daily, "busy parent")
		_, ok = profile.SystemMessageFor("weekly_review")
		assert.True(t, ok)

		assert.True(t, Validate(profile))
	})

	t.Run("strips markdown code fences", func(t *testing.T) {
		srv := stubGroqServer(t, "```json\n"+validGeneratedJSON()+"\n```")
		defer srv.Close()

		profile := NewGenerator(providerFor(srv)).Generate(ctx, testAnswers())
		require.NotNil(t, profile)
		assert.False(t, profile.IsDefault)
		assert.Equal(t, "warm, direct", profile.CoachingTone)
	})

	t.Run("falls back on non-JSON response", func(t *testing.T) {
		srv := stubGroqServer(t, "Here is your profile! I hope you like it.")
		defer srv.Close()

		profile := NewGenerator(providerFor(srv)).Generate(ctx, testAnswers())
		require.NotNil(t, profile)
		assert.True(t, profile.IsDefault)
		assert.True(t, Validate(profile))
	})

	t.Run("falls back on incomplete response", func(t *testing.T) {
		srv := stubGroqServer(t, `{"coaching_tone": "warm"}`)
		defer srv.Close()

		profile := NewGenerator(providerFor(srv)).Generate(ctx, testAnswers())
		require.NotNil(t, profile)
		assert.True(t, profile.IsDefault)
	})

	t.Run("falls back on provider error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
		}))
		defer srv.Close()

		answers := testAnswers()
		profile := NewGenerator(providerFor(srv)).Generate(ctx, answers)
		require.NotNil(t, profile)

		assert.True(t, profile.IsDefault)
		assert.Equal(t, "de", profile.LanguageCode)
		assert.Equal(t, answers.Goals, profile.KeyFocusAreas)
		assert.Equal(t, "encouraging, practical", profile.CoachingTone)
		assert.True(t, Validate(profile))
	})
}

func TestDefaultProfile(t *testing.T) {
	t.Run("complete answers", func(t *testing.T) {
		profile := DefaultProfile(testAnswers())

		assert.True(t, profile.IsDefault)
		assert.Equal(t, 30, profile.TimeBlockSize)
		assert.Equal(t, types.EmphasisMedium, profile.IslamicLevel)
		assert.Len(t, profile.KeyFocusAreas, 3)

		daily, ok := profile.SystemMessageFor("daily_planning")
		require.True(t, ok)
		assert.Contains(t, daily, "Parent with young children")
		assert.Contains(t, daily, "Quran memorization/study")

		assert.True(t, Validate(profile))
	})

	t.Run("empty answers still produce a valid shape", func(t *testing.T) {
		profile := DefaultProfile(types.OnboardingAnswers{})

		assert.Equal(t, "en", profile.LanguageCode)
		assert.Equal(t, []string{"productivity", "balance", "growth"}, profile.KeyFocusAreas)

		daily, ok := profile.SystemMessageFor("daily_planning")
		require.True(t, ok)
		assert.Contains(t, daily, "individual")
	})

	t.Run("more than three goals are trimmed", func(t *testing.T) {
		answers := testAnswers()
		answers.Goals = []string{"a", "b", "c", "d", "e"}
		profile := DefaultProfile(answers)
		assert.Equal(t, []string{"a", "b", "c"}, profile.KeyFocusAreas)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *types.UserProfile {
		return DefaultProfile(testAnswers())
	}

	t.Run("nil profile", func(t *testing.T) {
		assert.False(t, Validate(nil))
	})

	t.Run("missing system message", func(t *testing.T) {
		p := valid()
		delete(p.SystemMessages, "weekly_review")
		assert.False(t, Validate(p))
	})

	t.Run("missing coaching tone", func(t *testing.T) {
		p := valid()
		p.CoachingTone = ""
		assert.False(t, Validate(p))
	})

	t.Run("missing focus areas", func(t *testing.T) {
		p := valid()
		p.KeyFocusAreas = nil
		assert.False(t, Validate(p))
	})

	t.Run("missing time block size", func(t *testing.T) {
		p := valid()
		p.TimeBlockSize = 0
		assert.False(t, Validate(p))
	})

	t.Run("missing onboarding data", func(t *testing.T) {
		p := valid()
		p.OnboardingData = types.OnboardingAnswers{}
		assert.False(t, Validate(p))
	})
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"a": 1}`, `{"a": 1}`},
		{"fenced", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced with json tag", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  {\"a\": 1}  ", `{"a": 1}`},
		{"unterminated fence", "```json\n{\"a\": 1}", `{"a": 1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripCodeFences(tc.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcde...", truncate("abcdefgh", 5))

	t.Run("multibyte text stays valid UTF-8", func(t *testing.T) {
		arabic := "خطة اليوم: قراءة القرآن ثم العمل"
		got := truncate(arabic, 10)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, string([]rune(arabic)[:10])+"...", got)
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(testAnswers())

	assert.Contains(t, prompt, "Deutsch")
	assert.Contains(t, prompt, "Parent with young children")
	assert.Contains(t, prompt, "Quran memorization/study, Career development, Family time")
	// Language directive for German users travels inside the prompt.
	assert.Contains(t, prompt, "Antworte auf Deutsch.")

	t.Run("skipped answers get neutral values", func(t *testing.T) {
		prompt := buildPrompt(types.OnboardingAnswers{})
		assert.Contains(t, prompt, "individual")
		assert.Contains(t, prompt, "varies")
		assert.Contains(t, prompt, "general productivity")
		assert.Contains(t, prompt, "Prefer not to say")
		assert.Contains(t, prompt, "Mix of everything")
	})
}
