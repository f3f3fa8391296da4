package diary

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultHistoryLimit is how many entries History keeps
const DefaultHistoryLimit = 10

type State int

const (
	StateIdle State = iota
	StateGenerating
)

func (s State) String() string {
	if s == StateGenerating {
		return "generating"
	}
	return "idle"
}

// Orchestrator runs one generation at a time and records the results
type Orchestrator struct {
	gen    Generator
	limit  int
	now    func() time.Time
	newID  func() string
	logger zerolog.Logger

	mu      sync.Mutex
	state   State
	current *Output
	history []Entry
}

type Option func(*Orchestrator)

// WithHistoryLimit caps the history length. Values below 1 are ignored.
func WithHistoryLimit(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.limit = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

func WithIDFunc(f func() string) Option {
	return func(o *Orchestrator) {
		if f != nil {
			o.newID = f
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = l
	}
}

func NewOrchestrator(gen Generator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		gen:    gen,
		limit:  DefaultHistoryLimit,
		now:    time.Now,
		newID:  newEntryID,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// newEntryID returns a time ordered UUID
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Generate validates in, asks the generator for content and records the
// result. The skills in the result are always the ones the caller sent.
func (o *Orchestrator) Generate(ctx context.Context, in Inputs) (*Output, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	skills := normalizeSkills(in.SkillsUsed)

	o.mu.Lock()
	if o.state == StateGenerating {
		o.mu.Unlock()
		return nil, ErrBusy
	}
	o.state = StateGenerating
	o.mu.Unlock()

	start := o.now()
	out, err := o.gen.Generate(ctx, NewRequest(in))
	if err == nil {
		if out == nil {
			err = errors.New("generator returned no output")
		} else if verr := out.Validate(); verr != nil {
			err = fmt.Errorf("invalid output: %w", verr)
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = StateIdle

	if err != nil {
		o.logger.Error().Err(err).
			Str("date", in.Date.Format(DateLayout)).
			Dur("elapsed", o.now().Sub(start)).
			Msg("diary generation failed")
		return nil, &GenerationError{Message: GenerationFailedMessage, Err: err}
	}

	result := out.Clone()
	result.SkillsUsed = skills

	entry := Entry{
		Output:      result.Clone(),
		ID:          o.newID(),
		DateCreated: in.Date,
	}
	o.history = slices.Insert(o.history, 0, entry)
	if len(o.history) > o.limit {
		clear(o.history[o.limit:])
		o.history = o.history[:o.limit]
	}
	o.current = &result

	o.logger.Info().
		Str("id", entry.ID).
		Int("skills", len(skills)).
		Int("history", len(o.history)).
		Dur("elapsed", o.now().Sub(start)).
		Msg("diary generated")

	cp := result.Clone()
	return &cp, nil
}

// LoadFromHistory makes a stored entry the current output again
func (o *Orchestrator) LoadFromHistory(e Entry) Output {
	out := e.Output.Clone()

	o.mu.Lock()
	cur := out.Clone()
	o.current = &cur
	o.mu.Unlock()

	return out
}

// Current returns the most recent output, if any
func (o *Orchestrator) Current() (*Output, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == nil {
		return nil, false
	}
	cp := o.current.Clone()
	return &cp, true
}

// History returns a copy of the stored entries, newest first
func (o *Orchestrator) History() []Entry {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]Entry, len(o.history))
	for i, e := range o.history {
		out[i] = e.clone()
	}
	return out
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Reset clears the current output. History is kept.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	o.current = nil
	o.mu.Unlock()
}
