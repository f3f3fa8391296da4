package llm

type CustomProvider struct {
	*OpenAIProvider
}

func NewCustomProvider(baseURL, apiKey, model string) *CustomProvider {
	return &CustomProvider{
		OpenAIProvider: newOpenAICompatible("custom", apiKey, baseURL, model),
	}
}
