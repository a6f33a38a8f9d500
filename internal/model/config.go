package model

import "time"

// Config is the complete runtime configuration
type Config struct {
	Advisory     AdvisoryConfig     `yaml:"advisory" mapstructure:"advisory"`
	LLM          LLMConfig          `yaml:"llm" mapstructure:"llm"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
}

// AdvisoryConfig holds the engine's validation thresholds
type AdvisoryConfig struct {
	MinDescriptionChars int `yaml:"min_description_chars" mapstructure:"min_description_chars"`
	MinMarksChars       int `yaml:"min_marks_chars" mapstructure:"min_marks_chars"`
}

// LLMConfig holds advisory model provider settings
type LLMConfig struct {
	Provider    string  `yaml:"provider" mapstructure:"provider"` // "openai", "anthropic", "ollama", "" (disabled)
	Model       string  `yaml:"model" mapstructure:"model"`
	APIKey      string  `yaml:"api_key" mapstructure:"api_key"`
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	Timeout     int     `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens   int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
}

// CacheConfig controls verification-question caching
type CacheConfig struct {
	Enabled     bool          `yaml:"enabled" mapstructure:"enabled"`
	QuestionTTL time.Duration `yaml:"question_ttl" mapstructure:"question_ttl"`
}

// ConcurrencyConfig controls batch processing parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitingConfig throttles outbound advisory model calls
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	Pretty  bool `yaml:"pretty" mapstructure:"pretty"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Advisory: AdvisoryConfig{
			MinDescriptionChars: 15,
			MinMarksChars:       10,
		},
		LLM: LLMConfig{
			Provider:    "", // Disabled by default; engine degrades to manual review
			Timeout:     30,
			MaxTokens:   1000,
			Temperature: 0.3,
		},
		Cache: CacheConfig{
			Enabled:     true,
			QuestionTTL: 1 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2.0,
			BurstSize:         5,
		},
		Output: OutputConfig{
			Pretty: true,
		},
	}
}
