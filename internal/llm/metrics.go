package llm

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// MetricsProvider wraps a Provider with simple call counters. Counts only,
// no histograms: enough to see whether the configured provider is being
// reached and how many tokens a session consumed.
type MetricsProvider struct {
	provider Provider

	totalCalls  int64
	totalErrors int64
	totalTokens int64
}

// WithMetrics wraps a provider with call counting.
func WithMetrics(p Provider) *MetricsProvider {
	return &MetricsProvider{provider: p}
}

// Chat delegates to the wrapped provider and records the outcome.
func (m *MetricsProvider) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	atomic.AddInt64(&m.totalCalls, 1)

	resp, err := m.provider.Chat(ctx, req)
	if err != nil {
		atomic.AddInt64(&m.totalErrors, 1)
		log.Debug().Err(err).Str("provider", m.provider.Name()).Msg("completion call failed")
		return nil, err
	}

	atomic.AddInt64(&m.totalTokens, int64(resp.TokensUsed))
	log.Debug().
		Str("provider", m.provider.Name()).
		Str("model", resp.Model).
		Int("tokens", resp.TokensUsed).
		Dur("duration", resp.Duration).
		Msg("completion call")
	return resp, nil
}

// Name returns the wrapped provider's identifier.
func (m *MetricsProvider) Name() string { return m.provider.Name() }

// Available reports the wrapped provider's availability.
func (m *MetricsProvider) Available() bool { return m.provider.Available() }

// Counts returns total calls, errors, and tokens since startup.
func (m *MetricsProvider) Counts() (calls, errors, tokens int64) {
	return atomic.LoadInt64(&m.totalCalls),
		atomic.LoadInt64(&m.totalErrors),
		atomic.LoadInt64(&m.totalTokens)
}
