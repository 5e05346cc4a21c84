package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPath(t *testing.T) {
	t.Run("creates default config when file missing", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "config.yaml")

		cfg, err := LoadFromPath(path)
		if err != nil {
			t.Fatalf("LoadFromPath failed: %v", err)
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Error("default config file not written")
		}
		if cfg.LLM.DefaultProvider != "groq" {
			t.Errorf("expected default provider 'groq', got %q", cfg.LLM.DefaultProvider)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected log level 'info', got %q", cfg.Logging.Level)
		}
		if cfg.Data.Dir == "" {
			t.Error("expected data dir to be set")
		}
	})

	t.Run("reads existing config", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "config.yaml")

		content := `llm:
  default_provider: groq
  providers:
    groq:
      model: llama-3.1-8b-instant
data:
  dir: ` + tmpDir + `
logging:
  level: debug
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cfg, err := LoadFromPath(path)
		if err != nil {
			t.Fatalf("LoadFromPath failed: %v", err)
		}

		if cfg.LLM.Providers["groq"].Model != "llama-3.1-8b-instant" {
			t.Errorf("expected model override, got %q", cfg.LLM.Providers["groq"].Model)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected log level 'debug', got %q", cfg.Logging.Level)
		}
		if cfg.Data.Dir != tmpDir {
			t.Errorf("expected data dir %q, got %q", tmpDir, cfg.Data.Dir)
		}
	})

	t.Run("creates nested config directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "deep", "nested", "config.yaml")

		if _, err := LoadFromPath(path); err != nil {
			t.Fatalf("LoadFromPath with nested dir failed: %v", err)
		}
		if _, err := os.Stat(filepath.Dir(path)); os.IsNotExist(err) {
			t.Error("nested config directory not created")
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.LLM.DefaultProvider != "groq" {
		t.Errorf("expected 'groq', got %q", cfg.LLM.DefaultProvider)
	}
	if _, ok := cfg.LLM.Providers["groq"]; !ok {
		t.Error("expected a groq provider entry")
	}
	if cfg.Data.Dir != "~/.coach" {
		t.Errorf("expected '~/.coach', got %q", cfg.Data.Dir)
	}
}
