package writer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/sant0-9/diary/internal/diary"
)

// ErrEmptyResponse is returned when the model answered with nothing
var ErrEmptyResponse = errors.New("empty response")

// wireOutput mirrors diary.Output with pointers so missing fields can be
// told apart from empty ones.
type wireOutput struct {
	Title         *string   `json:"title"`
	WorkSummary   *string   `json:"workSummary"`
	HoursWorked   *string   `json:"hoursWorked"`
	Learnings     *string   `json:"learnings"`
	Blockers      *string   `json:"blockers"`
	SkillsUsed    *[]string `json:"skillsUsed"`
	ReferenceLink *string   `json:"referenceLink"`
}

// ParseOutput decodes a model response into an Output. Unknown fields,
// missing fields, wrong types and blank text are all errors.
func ParseOutput(content string) (*diary.Output, error) {
	content = stripFences(content)
	if content == "" {
		return nil, ErrEmptyResponse
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(content)))
	dec.DisallowUnknownFields()

	var w wireOutput
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode response: trailing data after object")
	}

	var missing []string
	str := func(name string, p *string) string {
		if p == nil {
			missing = append(missing, name)
			return ""
		}
		return *p
	}

	out := &diary.Output{
		Title:         str("title", w.Title),
		WorkSummary:   str("workSummary", w.WorkSummary),
		HoursWorked:   str("hoursWorked", w.HoursWorked),
		Learnings:     str("learnings", w.Learnings),
		Blockers:      str("blockers", w.Blockers),
		ReferenceLink: str("referenceLink", w.ReferenceLink),
	}
	if w.SkillsUsed == nil {
		missing = append(missing, "skillsUsed")
	} else {
		out.SkillsUsed = *w.SkillsUsed
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("response missing fields: %s", strings.Join(missing, ", "))
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("response: %w", err)
	}
	return out, nil
}

// stripFences removes a markdown code fence around the JSON
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	lines := strings.Split(content, "\n")
	var body []string
	in := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if in {
				break
			}
			in = true
			continue
		}
		if in {
			body = append(body, line)
		}
	}
	return strings.TrimSpace(strings.Join(body, "\n"))
}
