package diary

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInputs() Inputs {
	in := NewInputs(time.Date(2025, 3, 14, 16, 30, 0, 0, time.UTC))
	in.Topic = "Building a REST API with Node.js and MongoDB"
	in.HoursWorked = 8
	in.SkillsUsed = []string{"MongoDB", "Node.js"}
	return in
}

func TestNewInputs(t *testing.T) {
	in := NewInputs(time.Date(2025, 3, 14, 16, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), in.Date)
	assert.Equal(t, SessionConducted, in.SessionType)
	assert.Equal(t, BlockerAI, in.BlockerMode)
	assert.Empty(t, in.Topic)
}

func TestParseSkills(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Python, SQL", []string{"Python", "SQL"}},
		{" Go ,, Docker , Go", []string{"Go", "Docker", "Go"}},
		{"", []string{}},
		{" , ", []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSkills(tt.in), "input %q", tt.in)
	}
}

func TestClampHours(t *testing.T) {
	assert.Equal(t, 1.0, ClampHours(0))
	assert.Equal(t, 7.5, ClampHours(7.5))
	assert.Equal(t, 24.0, ClampHours(30))
	assert.Equal(t, 1.0, ClampHours(math.NaN()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Inputs)
		field  string
	}{
		{name: "valid", modify: func(*Inputs) {}},
		{name: "zero date", modify: func(in *Inputs) { in.Date = time.Time{} }, field: "date"},
		{name: "short topic", modify: func(in *Inputs) { in.Topic = "  ab  " }, field: "topic"},
		{name: "no hours", modify: func(in *Inputs) { in.HoursWorked = 0 }, field: "hoursWorked"},
		{name: "too many hours", modify: func(in *Inputs) { in.HoursWorked = 25 }, field: "hoursWorked"},
		{name: "no skills", modify: func(in *Inputs) { in.SkillsUsed = []string{" ", ""} }, field: "skillsUsed"},
		{name: "bad session", modify: func(in *Inputs) { in.SessionType = "Lecture" }, field: "sessionType"},
		{name: "bad blocker mode", modify: func(in *Inputs) { in.BlockerMode = "maybe" }, field: "blockerMode"},
		{
			name:   "custom blocker without text",
			modify: func(in *Inputs) { in.BlockerMode = BlockerCustom; in.BlockerInput = "  " },
			field:  "blockerInput",
		},
		{name: "relative link", modify: func(in *Inputs) { in.ReferenceLink = "github.com/me" }, field: "referenceLink"},
		{name: "ftp link", modify: func(in *Inputs) { in.ReferenceLink = "ftp://example.com/x" }, field: "referenceLink"},
		{name: "https link", modify: func(in *Inputs) { in.ReferenceLink = "https://github.com/me/repo" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInputs()
			tt.modify(&in)

			err := in.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestBlockerModeNext(t *testing.T) {
	assert.Equal(t, BlockerNone, BlockerAI.Next())
	assert.Equal(t, BlockerCustom, BlockerNone.Next())
	assert.Equal(t, BlockerAI, BlockerCustom.Next())
	assert.Equal(t, SessionSelfStudy, SessionConducted.Toggle())
}
