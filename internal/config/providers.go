package config

type ProviderInfo struct {
	ID           string
	Name         string
	Description  string
	NeedsAPIKey  bool
	NeedsBaseURL bool
	SignupURL    string
	Models       []string
	DefaultModel string
}

var Providers = []ProviderInfo{
	{
		ID:           "gemini",
		Name:         "Gemini",
		Description:  "Google, fast JSON output",
		NeedsAPIKey:  true,
		SignupURL:    "https://aistudio.google.com/apikey",
		Models:       []string{"gemini-2.5-flash", "gemini-2.5-pro", "gemini-2.0-flash"},
		DefaultModel: "gemini-2.5-flash",
	},
	{
		ID:           "ollama",
		Name:         "Ollama",
		Description:  "Local, free, private",
		NeedsAPIKey:  false,
		Models:       []string{"llama3.1:8b", "qwen2.5:7b", "mistral:7b"},
		DefaultModel: "llama3.1:8b",
	},
	{
		ID:           "groq",
		Name:         "Groq",
		Description:  "Very fast, cheap",
		NeedsAPIKey:  true,
		SignupURL:    "https://console.groq.com/keys",
		Models:       []string{"llama-3.3-70b-versatile", "llama-3.1-8b-instant"},
		DefaultModel: "llama-3.3-70b-versatile",
	},
	{
		ID:           "openai",
		Name:         "OpenAI",
		Description:  "GPT-4o, most capable",
		NeedsAPIKey:  true,
		SignupURL:    "https://platform.openai.com/api-keys",
		Models:       []string{"gpt-4o", "gpt-4o-mini"},
		DefaultModel: "gpt-4o-mini",
	},
	{
		ID:           "anthropic",
		Name:         "Anthropic",
		Description:  "Claude, great writing",
		NeedsAPIKey:  true,
		SignupURL:    "https://console.anthropic.com/",
		Models:       []string{"claude-3-5-sonnet-latest", "claude-3-5-haiku-latest"},
		DefaultModel: "claude-3-5-haiku-latest",
	},
	{
		ID:           "openrouter",
		Name:         "OpenRouter",
		Description:  "Access all models",
		NeedsAPIKey:  true,
		SignupURL:    "https://openrouter.ai/keys",
		Models:       []string{"google/gemini-2.5-flash", "openai/gpt-4o-mini", "meta-llama/llama-3.1-70b-instruct"},
		DefaultModel: "google/gemini-2.5-flash",
	},
	{
		ID:           "custom",
		Name:         "Custom",
		Description:  "Any OpenAI-compatible endpoint",
		NeedsBaseURL: true,
	},
}

func GetProvider(id string) *ProviderInfo {
	for _, p := range Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
