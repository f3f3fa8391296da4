package tui

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/rs/zerolog"

	"github.com/sant0-9/diary/internal/config"
	"github.com/sant0-9/diary/internal/diary"
	"github.com/sant0-9/diary/internal/llm"
	"github.com/sant0-9/diary/internal/skill"
	"github.com/sant0-9/diary/internal/tui/styles"
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool
	logger     zerolog.Logger
	now        func() time.Time

	// Setup wizard state
	setupStep        setupStep
	selectedProvider int
	apiKeyInput      textinput.Model
	baseURLInput     textinput.Model

	// Provider
	provider      llm.Provider
	providerReady bool
	providerError error

	// generator is swapped when the provider changes; generations
	// read it from their own goroutine
	generator atomic.Pointer[diary.Generator]

	// Core
	classifier   *skill.Classifier
	orchestrator *diary.Orchestrator

	// Form
	form form

	// Skill catalog picker
	skillQuery    textinput.Model
	skillSelected int

	// Processing
	spinner     spinner.Model
	lastInputs  diary.Inputs
	started     time.Time
	processErr  error
	cancel      context.CancelFunc

	// Result
	result     *diary.Output
	resultDate time.Time
	viewport   viewport.Model
	notice     string

	// History
	historySelected int

	// Settings
	settingsMode     string
	settingsSelected int
}

func newState(now func() time.Time) *state {
	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	baseURL := newTextInput("http://localhost:8080/v1", 300, 50)
	query := newTextInput("Search skills...", 50, 40)

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.Selected),
	)

	return &state{
		now:          now,
		apiKeyInput:  apiKey,
		baseURLInput: baseURL,
		form:         newForm(now()),
		skillQuery:   query,
		spinner:      sp,
		viewport:     viewport.New(70, 20),
	}
}
