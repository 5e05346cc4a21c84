package llm

import (
	"fmt"
	"os"

	"github.com/brain-time/coach/internal/config"
)

// NewProvider creates a completion provider from application configuration.
// The returned provider is wrapped with call counting.
func NewProvider(cfg *config.Config) (Provider, error) {
	providerName := cfg.LLM.DefaultProvider
	if providerName == "" {
		providerName = "groq"
	}

	providerCfg := cfg.LLM.Providers[providerName]

	// API key from config, falling back to the standard environment variable.
	apiKey := providerCfg.APIKey
	if apiKey == "" {
		apiKey = apiKeyFromEnv(providerName)
	}

	llmCfg := &ProviderConfig{
		Name:     providerName,
		Endpoint: providerCfg.Endpoint,
		APIKey:   apiKey,
		Model:    providerCfg.Model,
	}

	switch providerName {
	case "groq":
		return WithMetrics(NewGroqProvider(llmCfg)), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", providerName)
	}
}

// apiKeyFromEnv retrieves the API key from standard environment variables.
func apiKeyFromEnv(providerName string) string {
	envVars := map[string]string{
		"groq": "GROQ_API_KEY",
	}
	if envVar, ok := envVars[providerName]; ok {
		return os.Getenv(envVar)
	}
	return ""
}
