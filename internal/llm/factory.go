package llm

import (
	"fmt"
	"strings"
)

// NewProvider creates a new advisory model provider based on configuration.
// An empty provider name returns (nil, nil): the advisory model is disabled
// and callers degrade to their fallback behavior.
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}
