package writer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sant0-9/diary/internal/diary"
	"github.com/sant0-9/diary/internal/llm"
	"github.com/sant0-9/diary/internal/prompts"
)

const DefaultTimeout = 60 * time.Second

// Writer generates diary content with an LLM provider
type Writer struct {
	provider llm.Provider
	model    string
	timeout  time.Duration
	logger   zerolog.Logger
}

type Option func(*Writer)

// WithTimeout bounds each generation. Zero or less keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(w *Writer) {
		if d > 0 {
			w.timeout = d
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(w *Writer) {
		w.logger = l
	}
}

// NewWriter creates a new writer
func NewWriter(provider llm.Provider, model string, opts ...Option) *Writer {
	w := &Writer{
		provider: provider,
		model:    model,
		timeout:  DefaultTimeout,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Generate implements diary.Generator
func (w *Writer) Generate(ctx context.Context, req diary.Request) (*diary.Output, error) {
	system, user, err := prompts.Build(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	llmReq := llm.NewRequest(w.model, system, user)
	llmReq.JSON = true

	resp, err := w.provider.Complete(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.provider.Name(), err)
	}

	w.logger.Debug().
		Str("provider", w.provider.Name()).
		Str("model", resp.Model).
		Str("finish", resp.FinishReason).
		Int("tokens", resp.Usage.TotalTokens).
		Msg("completion received")

	out, err := ParseOutput(resp.Content)
	if err != nil {
		return nil, err
	}

	// Literal blockers are not left to the model
	if req.Blocker.Literal != "" {
		out.Blockers = req.Blocker.Literal
	}
	return out, nil
}
