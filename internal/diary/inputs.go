package diary

import (
	"math"
	"net/url"
	"strings"
	"time"
)

const (
	MinHours       = 1
	MaxHours       = 24
	MinTopicLength = 3

	DateLayout = "2006-01-02"
)

// Inputs is what the user fills in for one day
type Inputs struct {
	Date          time.Time
	Topic         string
	HoursWorked   float64
	SkillsUsed    []string
	ReferenceLink string
	SessionType   SessionType
	BlockerMode   BlockerMode
	BlockerInput  string
}

// NewInputs returns the form defaults for the given day
func NewInputs(now time.Time) Inputs {
	y, m, d := now.Date()
	return Inputs{
		Date:        time.Date(y, m, d, 0, 0, 0, 0, now.Location()),
		SessionType: SessionConducted,
		BlockerMode: BlockerAI,
	}
}

// ParseSkills splits comma separated skill text. Entries are trimmed and
// blanks dropped; order and repeats are kept as written.
func ParseSkills(s string) []string {
	return normalizeSkills(strings.Split(s, ","))
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ClampHours limits h to the accepted range
func ClampHours(h float64) float64 {
	if math.IsNaN(h) {
		return MinHours
	}
	return math.Max(MinHours, math.Min(MaxHours, h))
}

// ValidationError reports the first input field that was rejected
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Validate checks the inputs before anything is sent for generation
func (in Inputs) Validate() error {
	if in.Date.IsZero() {
		return invalid("date", "required")
	}
	if len([]rune(strings.TrimSpace(in.Topic))) < MinTopicLength {
		return invalid("topic", "must be at least 3 characters")
	}
	if math.IsNaN(in.HoursWorked) || in.HoursWorked < MinHours || in.HoursWorked > MaxHours {
		return invalid("hoursWorked", "must be between 1 and 24")
	}
	if len(normalizeSkills(in.SkillsUsed)) == 0 {
		return invalid("skillsUsed", "at least one skill is required")
	}
	if !in.SessionType.Valid() {
		return invalid("sessionType", "unknown session type")
	}
	if !in.BlockerMode.Valid() {
		return invalid("blockerMode", "unknown blocker mode")
	}
	if in.BlockerMode == BlockerCustom && strings.TrimSpace(in.BlockerInput) == "" {
		return invalid("blockerInput", "required for custom blockers")
	}
	if link := strings.TrimSpace(in.ReferenceLink); link != "" {
		u, err := url.Parse(link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return invalid("referenceLink", "must be an http or https URL")
		}
	}
	return nil
}
