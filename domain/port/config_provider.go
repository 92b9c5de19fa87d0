package port

// Config is the handler-facing view of the server configuration. Secrets
// stay inside the provider adapters; the handler only needs to know what is
// configured.
type Config struct {
	ChatConfigured   bool
	SpeechConfigured bool
	DefaultVoice     string
}

// RateLimitConfig controls the handler rate limiting middleware.
type RateLimitConfig struct {
	Enabled     bool
	GlobalRPS   float64
	PerIPRPS    float64
	BurstFactor float64
}

// ConfigProvider exposes the current server configuration.
type ConfigProvider interface {
	Get() *Config
	GetRateLimit() RateLimitConfig
}
