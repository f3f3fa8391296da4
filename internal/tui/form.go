package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/diary/internal/diary"
	"github.com/sant0-9/diary/internal/skill"
)

type field int

const (
	fieldDate field = iota
	fieldTopic
	fieldHours
	fieldSession
	fieldSkills
	fieldBlockerMode
	fieldBlockerInput
	fieldLink
	fieldCount
)

func (f field) isText() bool {
	switch f {
	case fieldDate, fieldTopic, fieldHours, fieldBlockerInput, fieldLink:
		return true
	}
	return false
}

type form struct {
	focus field

	date    textinput.Model
	topic   textinput.Model
	hours   textinput.Model
	blocker textinput.Model
	link    textinput.Model

	session     diary.SessionType
	blockerMode diary.BlockerMode

	// skills is what gets sent. Topic edits replace it with the
	// classifier's suggestions.
	skills      []string
	matches     []skill.Match
	skillCursor int
	lastTopic   string

	err error
}

func newTextInput(placeholder string, limit, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = width
	return in
}

func newForm(now time.Time) form {
	defaults := diary.NewInputs(now)

	f := form{
		date:        newTextInput(diary.DateLayout, 10, 12),
		topic:       newTextInput("What did you work on today?", 200, 50),
		hours:       newTextInput("1-24", 5, 6),
		blocker:     newTextInput("Describe what slowed you down", 300, 50),
		link:        newTextInput("https://github.com/you/project", 300, 50),
		session:     defaults.SessionType,
		blockerMode: defaults.BlockerMode,
		focus:       fieldTopic,
	}
	f.date.SetValue(defaults.Date.Format(diary.DateLayout))
	f.topic.Focus()
	return f
}

func (f *form) input(fl field) *textinput.Model {
	switch fl {
	case fieldDate:
		return &f.date
	case fieldTopic:
		return &f.topic
	case fieldHours:
		return &f.hours
	case fieldBlockerInput:
		return &f.blocker
	case fieldLink:
		return &f.link
	}
	return nil
}

func (f *form) skip(fl field) bool {
	return fl == fieldBlockerInput && f.blockerMode != diary.BlockerCustom
}

// move shifts focus by delta, skipping fields that are hidden
func (f *form) move(delta int) tea.Cmd {
	if in := f.input(f.focus); in != nil {
		in.Blur()
	}
	if f.focus == fieldHours {
		f.clampHours()
	}

	next := f.focus
	for {
		next = field((int(next) + delta + int(fieldCount)) % int(fieldCount))
		if !f.skip(next) {
			break
		}
	}
	f.focus = next

	if in := f.input(f.focus); in != nil {
		return in.Focus()
	}
	return nil
}

func (f *form) clampHours() {
	v := strings.TrimSpace(f.hours.Value())
	if v == "" {
		return
	}
	h, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}
	f.hours.SetValue(diary.FormatHours(diary.ClampHours(h)))
}

// classify refreshes the skill suggestions when the topic changed
func (f *form) classify(c *skill.Classifier) {
	topic := f.topic.Value()
	if topic == f.lastTopic || c == nil {
		return
	}
	f.lastTopic = topic

	f.matches = c.Explain(topic)
	f.skills = make([]string, len(f.matches))
	for i, m := range f.matches {
		f.skills[i] = m.Skill
	}
	f.skillCursor = 0
}

func (f *form) addSkill(name string) {
	if name == "" || slices.Contains(f.skills, name) {
		return
	}
	f.skills = append(f.skills, name)
}

func (f *form) removeSkill(i int) {
	if i < 0 || i >= len(f.skills) {
		return
	}
	f.skills = slices.Delete(f.skills, i, i+1)
	if f.skillCursor >= len(f.skills) {
		f.skillCursor = max(0, len(f.skills)-1)
	}
}

// matchFor reports the keyword that suggested a skill, if any
func (f *form) matchFor(name string) string {
	for _, m := range f.matches {
		if m.Skill == name {
			return m.Keyword
		}
	}
	return ""
}

// inputs converts the form to diary inputs. Only parse errors are
// reported here; the orchestrator validates the rest.
func (f *form) inputs() (diary.Inputs, error) {
	var in diary.Inputs

	date, err := time.ParseInLocation(diary.DateLayout, strings.TrimSpace(f.date.Value()), time.Local)
	if err != nil {
		return in, &diary.ValidationError{Field: "date", Reason: fmt.Sprintf("use %s", diary.DateLayout)}
	}

	var hours float64
	if v := strings.TrimSpace(f.hours.Value()); v != "" {
		if hours, err = strconv.ParseFloat(v, 64); err != nil {
			return in, &diary.ValidationError{Field: "hoursWorked", Reason: "must be a number"}
		}
	}

	in = diary.Inputs{
		Date:          date,
		Topic:         f.topic.Value(),
		HoursWorked:   hours,
		SkillsUsed:    slices.Clone(f.skills),
		ReferenceLink: strings.TrimSpace(f.link.Value()),
		SessionType:   f.session,
		BlockerMode:   f.blockerMode,
		BlockerInput:  f.blocker.Value(),
	}
	return in, in.Validate()
}

// handleKey deals with keys on the non text fields
func (f *form) handleKey(msg tea.KeyMsg) {
	switch f.focus {
	case fieldSession:
		switch msg.String() {
		case " ", "left", "right":
			f.session = f.session.Toggle()
		}

	case fieldBlockerMode:
		switch msg.String() {
		case " ", "right":
			f.blockerMode = f.blockerMode.Next()
		case "left":
			f.blockerMode = f.blockerMode.Next().Next()
		}

	case fieldSkills:
		switch msg.String() {
		case "left":
			if f.skillCursor > 0 {
				f.skillCursor--
			}
		case "right":
			if f.skillCursor < len(f.skills)-1 {
				f.skillCursor++
			}
		case "x", "delete", "backspace":
			f.removeSkill(f.skillCursor)
		}
	}
}
