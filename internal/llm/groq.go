package llm

type GroqProvider struct {
	*OpenAIProvider
}

func NewGroqProvider(apiKey, model string) *GroqProvider {
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	return &GroqProvider{
		OpenAIProvider: newOpenAICompatible("groq", apiKey, "https://api.groq.com/openai/v1", model),
	}
}
