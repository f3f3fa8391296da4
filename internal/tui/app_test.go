package tui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/diary/internal/config"
	"github.com/sant0-9/diary/internal/diary"
	"github.com/sant0-9/diary/internal/skill"
)

var testNow = func() time.Time { return time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local) }

func newTestApp(t *testing.T, gen diary.GeneratorFunc) *App {
	t.Helper()
	a := NewApp(Options{
		Config:    config.DefaultConfig(),
		Rules:     skill.MustDefault(),
		Generator: gen,
		Now:       testNow,
	})
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return a
}

func okGenerator(_ context.Context, req diary.Request) (*diary.Output, error) {
	return &diary.Output{
		Title:         "Daily Internship Diary - " + req.Date,
		WorkSummary:   "Worked.",
		HoursWorked:   req.Hours,
		Learnings:     "Learned.",
		Blockers:      req.Blocker.Value(),
		SkillsUsed:    []string{"Something", "Else"},
		ReferenceLink: "Add your submission, badge, or profile link here",
	}, nil
}

func typeText(a *App, s string) {
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestTopicSuggestsSkills(t *testing.T) {
	a := newTestApp(t, okGenerator)

	typeText(a, "Building a REST API with Node.js and MongoDB")
	assert.Equal(t, []string{"MongoDB", "Node.js"}, a.state.form.skills)
	assert.Equal(t, "node.js", a.state.form.matchFor("Node.js"))
}

func TestFormDefaults(t *testing.T) {
	a := newTestApp(t, okGenerator)
	f := a.state.form

	assert.Equal(t, "2025-03-14", f.date.Value())
	assert.Equal(t, diary.SessionConducted, f.session)
	assert.Equal(t, diary.BlockerAI, f.blockerMode)
	assert.Equal(t, fieldTopic, f.focus)
}

func TestFormNavigationSkipsBlockerInput(t *testing.T) {
	a := newTestApp(t, okGenerator)
	f := &a.state.form

	f.focus = fieldBlockerMode
	f.move(1)
	assert.Equal(t, fieldLink, f.focus)

	f.focus = fieldBlockerMode
	f.blockerMode = diary.BlockerCustom
	f.move(1)
	assert.Equal(t, fieldBlockerInput, f.focus)
}

func TestFormToggles(t *testing.T) {
	a := newTestApp(t, okGenerator)
	f := &a.state.form

	f.move(2) // topic -> hours -> session
	require.Equal(t, fieldSession, f.focus)
	a.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, diary.SessionSelfStudy, f.session)

	f.move(2) // session -> skills -> blocker mode
	require.Equal(t, fieldBlockerMode, f.focus)
	a.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, diary.BlockerNone, f.blockerMode)
}

func TestRemoveSkill(t *testing.T) {
	a := newTestApp(t, okGenerator)
	typeText(a, "Docker and Kubernetes")
	require.Equal(t, []string{"Docker", "Kubernetes"}, a.state.form.skills)

	a.state.form.focus = fieldSkills
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Equal(t, []string{"Kubernetes"}, a.state.form.skills)
}

func TestHoursClampedOnBlur(t *testing.T) {
	a := newTestApp(t, okGenerator)
	f := &a.state.form

	f.move(1)
	require.Equal(t, fieldHours, f.focus)
	f.hours.SetValue("30")
	f.move(1)
	assert.Equal(t, "24", f.hours.Value())
}

func TestSubmitValidation(t *testing.T) {
	a := newTestApp(t, okGenerator)
	typeText(a, "Docker compose networking")

	assert.Nil(t, a.submit())
	var verr *diary.ValidationError
	require.ErrorAs(t, a.state.form.err, &verr)
	assert.Equal(t, "hoursWorked", verr.Field)
	assert.Equal(t, viewForm, a.view)
}

func TestGenerateShowsResult(t *testing.T) {
	a := newTestApp(t, okGenerator)
	typeText(a, "Building a REST API with Node.js and MongoDB")
	a.state.form.hours.SetValue("8")

	in, err := a.state.form.inputs()
	require.NoError(t, err)

	a.startGeneration(in)
	assert.Equal(t, viewProcessing, a.view)

	a.Update(a.runGeneration(in)())
	assert.Equal(t, viewResult, a.view)
	require.NotNil(t, a.state.result)
	assert.Equal(t, []string{"MongoDB", "Node.js"}, a.state.result.SkillsUsed)
	assert.Len(t, a.state.orchestrator.History(), 1)
	assert.Contains(t, a.View(), "Daily Internship Diary - 2025-03-14")
}

func TestGenerateFailureShowsGenericMessage(t *testing.T) {
	a := newTestApp(t, func(context.Context, diary.Request) (*diary.Output, error) {
		return nil, errors.New("429 rate limit exceeded")
	})
	typeText(a, "Docker compose networking")
	a.state.form.hours.SetValue("4")

	in, err := a.state.form.inputs()
	require.NoError(t, err)
	a.Update(a.runGeneration(in)())

	assert.Equal(t, viewError, a.view)
	assert.Equal(t, diary.GenerationFailedMessage, errorText(a.state.processErr))
	assert.Contains(t, suggestions(a.state.processErr), "You've hit the API rate limit")
	assert.NotContains(t, a.View(), "429")
}

func TestHistoryLoad(t *testing.T) {
	a := newTestApp(t, okGenerator)
	typeText(a, "Docker compose networking")
	a.state.form.hours.SetValue("4")

	in, err := a.state.form.inputs()
	require.NoError(t, err)
	a.Update(a.runGeneration(in)())
	require.Equal(t, viewResult, a.view)

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Equal(t, viewForm, a.view)
	_, ok := a.state.orchestrator.Current()
	assert.False(t, ok)

	a.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, viewHistory, a.view)
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, viewResult, a.view)
	assert.Equal(t, []string{"Docker"}, a.state.result.SkillsUsed)
}

func TestResultSavePDF(t *testing.T) {
	a := newTestApp(t, okGenerator)
	dir := t.TempDir()
	a.state.config.ExportDir = dir

	typeText(a, "Docker compose networking")
	a.state.form.hours.SetValue("4")
	in, err := a.state.form.inputs()
	require.NoError(t, err)
	a.Update(a.runGeneration(in)())
	require.Equal(t, viewResult, a.view)

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	assert.Equal(t, viewResult, a.view)

	data, err := os.ReadFile(filepath.Join(dir, "Diary_2025-03-14.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, a.state.notice, "Saved to")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hel...", truncate("hello world", 6))
	assert.Equal(t, "he", truncate("hello", 2))
}
