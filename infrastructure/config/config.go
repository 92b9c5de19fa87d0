// Package config loads and validates the server configuration. Secrets come
// from the environment; the yaml file provides everything that is safe to
// commit.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lingua-proxy/domain/port"
)

// OpenAI configures the chat-completion upstream.
type OpenAI struct {
	BaseURL string `yaml:"base_url,omitempty"`
	APIKey  string `yaml:"api_key,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

// GetBaseURL returns the chat endpoint base URL.
func (o *OpenAI) GetBaseURL() string {
	if o.BaseURL == "" {
		return "https://api.openai.com/v1"
	}
	return o.BaseURL
}

// GetModel returns the model identifier, defaulted if absent.
func (o *OpenAI) GetModel() string {
	if o.Model == "" {
		return "gpt-4o-mini"
	}
	return o.Model
}

// Eleven configures the text-to-speech upstream.
type Eleven struct {
	BaseURL string `yaml:"base_url,omitempty"`
	APIKey  string `yaml:"api_key,omitempty"`
	VoiceID string `yaml:"voice_id,omitempty"`
}

// GetBaseURL returns the speech endpoint base URL.
func (e *Eleven) GetBaseURL() string {
	if e.BaseURL == "" {
		return "https://api.elevenlabs.io"
	}
	return e.BaseURL
}

// Logging configures the log sinks.
type Logging struct {
	Level      string `yaml:"level,omitempty"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
	Compress   bool   `yaml:"compress,omitempty"`
	Colorize   *bool  `yaml:"colorize,omitempty"`
}

// GetLevel returns the log level, defaulted to info.
func (l *Logging) GetLevel() string {
	if l.Level == "" {
		return "info"
	}
	return l.Level
}

// GetMaxSizeMB returns the rotation size threshold.
func (l *Logging) GetMaxSizeMB() int {
	if l.MaxSizeMB <= 0 {
		return 50
	}
	return l.MaxSizeMB
}

// GetMaxBackups returns the number of rotated files kept.
func (l *Logging) GetMaxBackups() int {
	if l.MaxBackups <= 0 {
		return 5
	}
	return l.MaxBackups
}

// GetMaxAgeDays returns the rotated-file retention in days.
func (l *Logging) GetMaxAgeDays() int {
	if l.MaxAgeDays <= 0 {
		return 7
	}
	return l.MaxAgeDays
}

// GetColorize reports whether console output may be colorized.
func (l *Logging) GetColorize() bool {
	return l.Colorize == nil || *l.Colorize
}

// RateLimit configures the handler rate limiting middleware.
type RateLimit struct {
	Enabled     bool    `yaml:"enabled"`
	GlobalRPS   float64 `yaml:"global_rps,omitempty"`
	PerIPRPS    float64 `yaml:"per_ip_rps,omitempty"`
	BurstFactor float64 `yaml:"burst_factor,omitempty"`
}

// GetGlobalRPS returns the global requests-per-second budget.
func (r *RateLimit) GetGlobalRPS() float64 {
	if r.GlobalRPS <= 0 {
		return 50
	}
	return r.GlobalRPS
}

// GetPerIPRPS returns the per-IP requests-per-second budget.
func (r *RateLimit) GetPerIPRPS() float64 {
	if r.PerIPRPS <= 0 {
		return 10
	}
	return r.PerIPRPS
}

// GetBurstFactor returns the burst multiplier.
func (r *RateLimit) GetBurstFactor() float64 {
	if r.BurstFactor <= 0 {
		return 1.5
	}
	return r.BurstFactor
}

// Config is the full server configuration.
type Config struct {
	Listen    string    `yaml:"listen,omitempty"`
	OpenAI    OpenAI    `yaml:"openai"`
	Eleven    Eleven    `yaml:"eleven"`
	Logging   Logging   `yaml:"logging"`
	RateLimit RateLimit `yaml:"rate_limit"`
}

// GetListen returns the listen address, defaulted if absent.
func (c *Config) GetListen() string {
	if c.Listen == "" {
		return ":8787"
	}
	return c.Listen
}

// Environment variable names for secrets and overrides.
const (
	EnvOpenAIKey   = "OPENAI_API_KEY"
	EnvOpenAIModel = "OPENAI_MODEL"
	EnvElevenKey   = "ELEVEN_API_KEY"
	EnvElevenVoice = "ELEVEN_VOICE_ID"
)

// Load reads the yaml file at path and applies environment overrides. A
// missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// env-only configuration is valid
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvOpenAIKey); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv(EnvOpenAIModel); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv(EnvElevenKey); v != "" {
		cfg.Eleven.APIKey = v
	}
	if v := os.Getenv(EnvElevenVoice); v != "" {
		cfg.Eleven.VoiceID = v
	}
}

// Manager holds the loaded configuration and implements port.ConfigProvider.
type Manager struct {
	cfg *Config
}

// NewManager loads the configuration from path.
func NewManager(path string) (*Manager, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Manager{cfg: cfg}, nil
}

// Config returns the full configuration.
func (m *Manager) Config() *Config {
	return m.cfg
}

// Get returns the handler-facing configuration view.
func (m *Manager) Get() *port.Config {
	return &port.Config{
		ChatConfigured:   m.cfg.OpenAI.APIKey != "",
		SpeechConfigured: m.cfg.Eleven.APIKey != "",
		DefaultVoice:     m.cfg.Eleven.VoiceID,
	}
}

// GetRateLimit returns the rate limit settings.
func (m *Manager) GetRateLimit() port.RateLimitConfig {
	rl := m.cfg.RateLimit
	return port.RateLimitConfig{
		Enabled:     rl.Enabled,
		GlobalRPS:   rl.GetGlobalRPS(),
		PerIPRPS:    rl.GetPerIPRPS(),
		BurstFactor: rl.GetBurstFactor(),
	}
}
