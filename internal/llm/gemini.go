package llm

// GeminiProvider uses the OpenAI-compatible surface of the Gemini API
type GeminiProvider struct {
	*OpenAIProvider
}

func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiProvider{
		OpenAIProvider: newOpenAICompatible("gemini", apiKey, "https://generativelanguage.googleapis.com/v1beta/openai/", model),
	}
}
