package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	ooption "github.com/openai/openai-go/option"
	oshared "github.com/openai/openai-go/shared"
)

const openAIBaseURL = "https://api.openai.com/v1"

// OpenAIProvider talks to the OpenAI chat completions API or any
// endpoint compatible with it.
type OpenAIProvider struct {
	name    string
	model   string
	baseURL string
	client  openai.Client
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return newOpenAICompatible("openai", apiKey, openAIBaseURL, model)
}

func newOpenAICompatible(name, apiKey, baseURL, model string) *OpenAIProvider {
	opts := []ooption.RequestOption{
		ooption.WithBaseURL(baseURL),
		ooption.WithHTTPClient(&http.Client{Timeout: 5 * time.Minute}),
		ooption.WithMaxRetries(0),
	}
	if strings.TrimSpace(apiKey) != "" {
		opts = append(opts, ooption.WithAPIKey(strings.TrimSpace(apiKey)))
	}
	return &OpenAIProvider{
		name:    name,
		model:   model,
		baseURL: baseURL,
		client:  openai.NewClient(opts...),
	}
}

func (o *OpenAIProvider) Name() string {
	return o.name
}

func (o *OpenAIProvider) Ping(ctx context.Context) error {
	if _, err := o.client.Models.List(ctx); err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return ErrInvalidAPIKey
		}
		return fmt.Errorf("cannot connect to %s at %s: %w", o.name, o.baseURL, err)
	}
	return nil
}

func (o *OpenAIProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = o.model
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Messages:    toOpenAIMessages(req.Messages),
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.JSON {
		format := oshared.NewResponseFormatJSONObjectParam()
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{OfJSONObject: &format}
	}

	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", o.name, err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("no response from %s", o.name)
	}

	choice := completion.Choices[0]
	return &CompletionResponse{
		Content:      choice.Message.Content,
		Model:        model,
		FinishReason: string(choice.FinishReason),
		Usage: Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}, nil
}

func toOpenAIMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case "system":
			out = append(out, openai.SystemMessage(m.Content))
		case "assistant":
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
