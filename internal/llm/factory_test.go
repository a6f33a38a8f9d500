package llm

import (
	"strings"
	"testing"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantName string
		wantNil  bool
		wantErr  bool
	}{
		{
			name:     "openai",
			config:   Config{Provider: "openai", APIKey: "test-key"},
			wantName: "openai",
		},
		{
			name:     "anthropic",
			config:   Config{Provider: "anthropic", APIKey: "test-key"},
			wantName: "anthropic",
		},
		{
			name:     "claude alias",
			config:   Config{Provider: "claude", APIKey: "test-key"},
			wantName: "anthropic",
		},
		{
			name:     "ollama",
			config:   Config{Provider: "ollama", Model: "llama3.1"},
			wantName: "ollama",
		},
		{
			name:     "case insensitive",
			config:   Config{Provider: "OpenAI", APIKey: "test-key"},
			wantName: "openai",
		},
		{
			name:    "empty means disabled",
			config:  Config{Provider: ""},
			wantNil: true,
		},
		{
			name:    "unknown provider",
			config:  Config{Provider: "bard"},
			wantErr: true,
		},
		{
			name:    "openai without key",
			config:  Config{Provider: "openai"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.config)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.wantNil {
				if provider != nil {
					t.Errorf("expected nil provider, got %v", provider)
				}
				return
			}

			if provider.Name() != tt.wantName {
				t.Errorf("expected provider %s, got %s", tt.wantName, provider.Name())
			}
		})
	}
}

func TestNewProvider_UnknownNamesSupported(t *testing.T) {
	_, err := NewProvider(Config{Provider: "bard"})
	if err == nil || !strings.Contains(err.Error(), "supported") {
		t.Errorf("error should list the supported providers, got %v", err)
	}
}
