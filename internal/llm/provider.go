package llm

import (
	"context"

	"github.com/prawinrajulu/reclaim/internal/model"
)

// Provider defines the interface for advisory model providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a system instruction plus a user prompt and returns
	// the raw text the model produced. Callers parse structure out of the
	// text themselves; the provider makes no guarantee beyond "some text".
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for one advisory model call
type CompletionRequest struct {
	// System is the system-role instruction string
	System string

	// Prompt is the user-role prompt string
	Prompt string

	// Model is the specific model to use (provider-specific, optional)
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature controls sampling randomness (0 = provider default)
	Temperature float64
}

// CompletionResponse contains the model's raw output
type CompletionResponse struct {
	// Text is the raw response text, expected (but not guaranteed) to
	// contain a JSON payload
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds advisory model provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama, mock servers in tests)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Temperature for response sampling
	Temperature float64
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:    "", // Disabled by default
		Model:       "",
		Timeout:     30,
		MaxTokens:   1000,
		Temperature: 0.3,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:    modelConfig.Provider,
		Model:       modelConfig.Model,
		APIKey:      modelConfig.APIKey,
		BaseURL:     modelConfig.BaseURL,
		Timeout:     modelConfig.Timeout,
		MaxTokens:   modelConfig.MaxTokens,
		Temperature: modelConfig.Temperature,
	}
}
