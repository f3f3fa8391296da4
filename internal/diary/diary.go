// Package diary turns validated user inputs into internship diary entries
// and keeps a short history of what was generated.
package diary

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// SessionType is how the day's work was organized
type SessionType string

const (
	SessionConducted SessionType = "Conducted Session"
	SessionSelfStudy SessionType = "Self-Study"
)

func (s SessionType) Valid() bool {
	return s == SessionConducted || s == SessionSelfStudy
}

// Toggle flips between the two session types
func (s SessionType) Toggle() SessionType {
	if s == SessionSelfStudy {
		return SessionConducted
	}
	return SessionSelfStudy
}

// BlockerMode decides where the blockers section comes from
type BlockerMode string

const (
	BlockerNone   BlockerMode = "none"
	BlockerCustom BlockerMode = "custom"
	BlockerAI     BlockerMode = "ai"
)

var blockerModes = []BlockerMode{BlockerAI, BlockerNone, BlockerCustom}

func (m BlockerMode) Valid() bool {
	return slices.Contains(blockerModes, m)
}

// Next cycles through the modes in the order the form shows them
func (m BlockerMode) Next() BlockerMode {
	i := slices.Index(blockerModes, m)
	return blockerModes[(i+1)%len(blockerModes)]
}

func (m BlockerMode) Label() string {
	switch m {
	case BlockerNone:
		return "None"
	case BlockerCustom:
		return "Custom"
	default:
		return "AI generated"
	}
}

// Output is one generated diary entry
type Output struct {
	Title         string   `json:"title"`
	WorkSummary   string   `json:"workSummary"`
	HoursWorked   string   `json:"hoursWorked"`
	Learnings     string   `json:"learnings"`
	Blockers      string   `json:"blockers"`
	SkillsUsed    []string `json:"skillsUsed"`
	ReferenceLink string   `json:"referenceLink"`
}

// Clone returns a copy that shares no memory with o
func (o Output) Clone() Output {
	o.SkillsUsed = slices.Clone(o.SkillsUsed)
	return o
}

// Validate reports every required text field that is blank. The
// reference link may be empty, since the input link is optional.
func (o Output) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", o.Title},
		{"workSummary", o.WorkSummary},
		{"hoursWorked", o.HoursWorked},
		{"learnings", o.Learnings},
		{"blockers", o.Blockers},
	}

	var errs []error
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%s: empty", f.name))
		}
	}
	return errors.Join(errs...)
}

// Entry is an Output recorded in the history
type Entry struct {
	Output
	ID          string
	DateCreated time.Time
}

func (e Entry) clone() Entry {
	e.Output = e.Output.Clone()
	return e
}

// Generator produces diary content for a request. Implementations are
// expected to be slow and fallible.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Output, error)
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func(ctx context.Context, req Request) (*Output, error)

func (f GeneratorFunc) Generate(ctx context.Context, req Request) (*Output, error) {
	return f(ctx, req)
}
