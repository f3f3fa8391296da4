package llm

import (
	"fmt"

	"github.com/sant0-9/diary/internal/config"
)

// NewProvider creates a provider from config
func NewProvider(cfg *config.Config) (Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("no provider configured")
	}

	info := config.GetProvider(cfg.Provider)
	if info == nil {
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
	if info.NeedsAPIKey && cfg.APIKey == "" {
		return nil, fmt.Errorf("%s requires an API key", cfg.Provider)
	}
	if info.NeedsBaseURL && cfg.BaseURL == "" {
		return nil, fmt.Errorf("%s provider requires base_url", cfg.Provider)
	}

	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(cfg.APIKey, cfg.Model), nil
	case "ollama":
		return NewOllamaProvider(cfg.BaseURL, cfg.Model), nil
	case "groq":
		return NewGroqProvider(cfg.APIKey, cfg.Model), nil
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model), nil
	case "anthropic":
		return NewAnthropicProvider(cfg.APIKey, cfg.Model), nil
	case "openrouter":
		return NewOpenRouterProvider(cfg.APIKey, cfg.Model), nil
	case "custom":
		return NewCustomProvider(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
