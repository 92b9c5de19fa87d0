package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetListen() != ":8787" {
		t.Errorf("listen = %q", cfg.GetListen())
	}
	if cfg.OpenAI.GetModel() != "gpt-4o-mini" {
		t.Errorf("model = %q", cfg.OpenAI.GetModel())
	}
	if cfg.OpenAI.GetBaseURL() != "https://api.openai.com/v1" {
		t.Errorf("base url = %q", cfg.OpenAI.GetBaseURL())
	}
	if cfg.Eleven.GetBaseURL() != "https://api.elevenlabs.io" {
		t.Errorf("eleven base url = %q", cfg.Eleven.GetBaseURL())
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("listen: [broken"), 0o644)

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}

func TestLoadFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte(`
listen: ":9000"
openai:
  model: gpt-bespoke
eleven:
  voice_id: voice-7
logging:
  level: debug
`), 0o644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetListen() != ":9000" {
		t.Errorf("listen = %q", cfg.GetListen())
	}
	if cfg.OpenAI.GetModel() != "gpt-bespoke" {
		t.Errorf("model = %q", cfg.OpenAI.GetModel())
	}
	if cfg.Eleven.VoiceID != "voice-7" {
		t.Errorf("voice = %q", cfg.Eleven.VoiceID)
	}
	if cfg.Logging.GetLevel() != "debug" {
		t.Errorf("level = %q", cfg.Logging.GetLevel())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvOpenAIKey, "sk-env")
	t.Setenv(EnvOpenAIModel, "gpt-env")
	t.Setenv(EnvElevenKey, "el-env")
	t.Setenv(EnvElevenVoice, "voice-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-env" || cfg.OpenAI.Model != "gpt-env" {
		t.Errorf("openai = %+v", cfg.OpenAI)
	}
	if cfg.Eleven.APIKey != "el-env" || cfg.Eleven.VoiceID != "voice-env" {
		t.Errorf("eleven = %+v", cfg.Eleven)
	}
}

func TestManagerPortView(t *testing.T) {
	t.Setenv(EnvOpenAIKey, "sk-env")
	t.Setenv(EnvElevenKey, "")
	t.Setenv(EnvElevenVoice, "voice-env")

	m, err := NewManager(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	view := m.Get()
	if !view.ChatConfigured {
		t.Error("chat should be configured via env key")
	}
	if view.SpeechConfigured {
		t.Error("speech should not be configured without a key")
	}
	if view.DefaultVoice != "voice-env" {
		t.Errorf("voice = %q", view.DefaultVoice)
	}
}

func TestRateLimitDefaults(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	rl := m.GetRateLimit()
	if rl.Enabled {
		t.Error("rate limiting should be disabled by default")
	}
	if rl.GlobalRPS <= 0 || rl.PerIPRPS <= 0 || rl.BurstFactor <= 0 {
		t.Errorf("defaults not applied: %+v", rl)
	}
}
