package llm

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brain-time/coach/internal/config"
)

type staticProvider struct {
	resp *ChatResponse
	err  error
}

func (s *staticProvider) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	return s.resp, s.err
}
func (s *staticProvider) Name() string    { return "static" }
func (s *staticProvider) Available() bool { return true }

func TestMetricsProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("counts calls and tokens", func(t *testing.T) {
		m := WithMetrics(&staticProvider{resp: &ChatResponse{Content: "ok", TokensUsed: 25}})

		for i := 0; i < 3; i++ {
			_, err := m.Chat(ctx, &ChatRequest{})
			require.NoError(t, err)
		}

		calls, errors, tokens := m.Counts()
		assert.Equal(t, int64(3), calls)
		assert.Equal(t, int64(0), errors)
		assert.Equal(t, int64(75), tokens)
	})

	t.Run("counts errors", func(t *testing.T) {
		m := WithMetrics(&staticProvider{err: fmt.Errorf("boom")})

		_, err := m.Chat(ctx, &ChatRequest{})
		require.Error(t, err)

		calls, errors, tokens := m.Counts()
		assert.Equal(t, int64(1), calls)
		assert.Equal(t, int64(1), errors)
		assert.Equal(t, int64(0), tokens)
	})

	t.Run("delegates identity", func(t *testing.T) {
		m := WithMetrics(&staticProvider{})
		assert.Equal(t, "static", m.Name())
		assert.True(t, m.Available())
	})
}

func TestNewProvider(t *testing.T) {
	t.Run("defaults to groq with metrics", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "env-key")

		p, err := NewProvider(config.Default())
		require.NoError(t, err)
		assert.Equal(t, "groq", p.Name())
		assert.True(t, p.Available())
		_, ok := p.(*MetricsProvider)
		assert.True(t, ok, "expected the provider to be wrapped with metrics")
	})

	t.Run("config API key wins over environment", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "env-key")

		cfg := config.Default()
		cfg.LLM.Providers = map[string]config.ProviderConfig{
			"groq": {APIKey: "config-key"},
		}
		p, err := NewProvider(cfg)
		require.NoError(t, err)
		assert.True(t, p.Available())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := config.Default()
		cfg.LLM.DefaultProvider = "nonexistent"
		_, err := NewProvider(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown provider")
	})
}
