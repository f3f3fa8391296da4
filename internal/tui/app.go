package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/sant0-9/diary/internal/config"
	"github.com/sant0-9/diary/internal/diary"
	"github.com/sant0-9/diary/internal/llm"
	"github.com/sant0-9/diary/internal/skill"
	"github.com/sant0-9/diary/internal/writer"
)

type view int

const (
	viewSetup view = iota
	viewForm
	viewSkills
	viewProcessing
	viewResult
	viewHistory
	viewSettings
	viewHelp
	viewError
)

// Options wires the app to its collaborators
type Options struct {
	// Config is nil when no config file exists yet; the setup wizard
	// runs first in that case.
	Config *config.Config
	Rules  *skill.RuleSet
	Logger zerolog.Logger

	// Generator replaces the provider backed writer when set
	Generator diary.Generator

	Now func() time.Time
}

type App struct {
	width    int
	height   int
	view     view
	back     view
	state    *state
	quitting bool
}

func NewApp(opts Options) *App {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := newState(now)
	s.logger = opts.Logger

	if opts.Config == nil {
		s.needsSetup = true
		s.config = config.DefaultConfig()
	} else {
		s.config = opts.Config
	}

	rules := opts.Rules
	if rules == nil {
		rules = skill.MustDefault()
	}
	s.classifier = skill.NewClassifier(rules)

	a := &App{view: viewForm, state: s}
	if opts.Generator != nil {
		gen := opts.Generator
		s.generator.Store(&gen)
		s.providerReady = true
	}

	s.orchestrator = diary.NewOrchestrator(
		diary.GeneratorFunc(a.generate),
		diary.WithHistoryLimit(s.config.HistoryLimit),
		diary.WithClock(now),
		diary.WithLogger(s.logger.With().Str("component", "orchestrator").Logger()),
	)
	return a
}

// generate forwards to whichever generator is current
func (a *App) generate(ctx context.Context, req diary.Request) (*diary.Output, error) {
	gen := a.state.generator.Load()
	if gen == nil {
		return nil, errors.New("no provider configured")
	}
	return (*gen).Generate(ctx, req)
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	cmds := []tea.Cmd{tea.WindowSize(), textinput.Blink}
	if !a.state.providerReady {
		cmds = append(cmds, a.testProvider())
	}
	return tea.Batch(cmds...)
}

// testProvider builds the provider from config and pings it
func (a *App) testProvider() tea.Cmd {
	cfg := *a.state.config
	return func() tea.Msg {
		provider, err := llm.NewProvider(&cfg)
		if err != nil {
			return providerErrorMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{provider}
	}
}

func (a *App) useProvider(p llm.Provider) {
	a.state.provider = p
	var gen diary.Generator = writer.NewWriter(p, a.state.config.Model,
		writer.WithTimeout(a.state.config.GenerationTimeout),
		writer.WithLogger(a.state.logger.With().Str("component", "writer").Logger()),
	)
	a.state.generator.Store(&gen)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if handled {
			return a, tea.Batch(cmds...)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.state.viewport.Width = a.boxWidth() - 4
		a.state.viewport.Height = max(5, a.height-10)

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.state.providerReady = false
		a.state.providerError = nil
		a.view = viewForm
		return a, a.testProvider()

	case setupErrorMsg:
		a.state.processErr = msg.error
		a.showError(viewSetup)
		return a, nil

	case providerReadyMsg:
		a.state.providerReady = true
		a.state.providerError = nil
		a.useProvider(msg.provider)
		a.state.logger.Info().Str("provider", msg.provider.Name()).Msg("provider ready")
		return a, nil

	case providerErrorMsg:
		a.state.providerError = msg.error
		a.state.logger.Warn().Err(msg.error).Str("provider", a.state.config.Provider).Msg("provider check failed")
		// Generation is still attempted, the error may be transient
		if p, err := llm.NewProvider(a.state.config); err == nil {
			a.useProvider(p)
		}
		return a, nil

	case generatedMsg:
		return a, a.handleGenerated(msg)

	case spinner.TickMsg:
		if a.view == viewProcessing {
			var cmd tea.Cmd
			a.state.spinner, cmd = a.state.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	cmds = append(cmds, a.updateInputs(msg))
	return a, tea.Batch(cmds...)
}

// updateInputs routes messages to the focused text input of the view
func (a *App) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s := a.state

	switch a.view {
	case viewSetup:
		switch s.setupStep {
		case setupAPIKey:
			s.apiKeyInput, cmd = s.apiKeyInput.Update(msg)
		case setupBaseURL:
			s.baseURLInput, cmd = s.baseURLInput.Update(msg)
		}

	case viewSettings:
		if s.settingsMode == "apikey" {
			s.apiKeyInput, cmd = s.apiKeyInput.Update(msg)
		}

	case viewForm:
		if in := s.form.input(s.form.focus); in != nil {
			*in, cmd = in.Update(msg)
			if s.form.focus == fieldTopic {
				s.form.classify(s.classifier)
			}
		}

	case viewSkills:
		s.skillQuery, cmd = s.skillQuery.Update(msg)
		s.skillSelected = min(s.skillSelected, max(0, len(a.skillResults())-1))

	case viewResult:
		s.viewport, cmd = s.viewport.Update(msg)
	}
	return cmd
}

// handleKey returns true when the key was consumed and must not reach
// an input.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		if a.state.cancel != nil {
			a.state.cancel()
		}
		a.quitting = true
		return tea.Quit, true
	}

	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewForm:
		return a.handleFormKey(msg)
	case viewSkills:
		return a.handleSkillsKey(msg)
	case viewProcessing:
		if key.Matches(msg, keys.Quit) && a.state.cancel != nil {
			a.state.cancel()
		}
		return nil, true
	case viewResult:
		return a.handleResultKey(msg)
	case viewHistory:
		return a.handleHistoryKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Quit) || key.Matches(msg, keys.Help) {
			a.view = a.back
		}
		return nil, true
	case viewError:
		return a.handleErrorKey(msg)
	}
	return nil, false
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	f := &a.state.form

	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit, true

	case key.Matches(msg, keys.Generate):
		return a.submit(), true

	case key.Matches(msg, keys.Help):
		a.back = viewForm
		a.view = viewHelp
		return nil, true

	case key.Matches(msg, keys.History):
		a.openHistory()
		return nil, true

	case key.Matches(msg, keys.Settings):
		a.state.settingsMode = ""
		a.view = viewSettings
		return nil, true

	case key.Matches(msg, keys.Tab), key.Matches(msg, keys.Down), key.Matches(msg, keys.Enter):
		return f.move(1), true

	case key.Matches(msg, keys.ShiftTab), key.Matches(msg, keys.Up):
		return f.move(-1), true
	}

	if f.focus == fieldSkills && (msg.String() == "/" || msg.String() == "+") {
		a.state.skillQuery.Reset()
		a.state.skillSelected = 0
		a.view = viewSkills
		return a.state.skillQuery.Focus(), true
	}

	if !f.focus.isText() {
		f.handleKey(msg)
		return nil, true
	}
	return nil, false
}

// submit validates the form and starts a generation
func (a *App) submit() tea.Cmd {
	in, err := a.state.form.inputs()
	a.state.form.err = err
	if err != nil {
		return nil
	}
	return a.startGeneration(in)
}

func (a *App) startGeneration(in diary.Inputs) tea.Cmd {
	s := a.state
	s.lastInputs = in
	s.started = s.now()
	s.notice = ""
	a.view = viewProcessing
	return tea.Batch(s.spinner.Tick, a.runGeneration(in))
}

func (a *App) runGeneration(in diary.Inputs) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	a.state.cancel = cancel
	orch := a.state.orchestrator

	return func() tea.Msg {
		defer cancel()
		out, err := orch.Generate(ctx, in)
		return generatedMsg{output: out, date: in.Date, err: err}
	}
}

func (a *App) handleGenerated(msg generatedMsg) tea.Cmd {
	s := a.state
	s.cancel = nil

	var verr *diary.ValidationError
	switch {
	case msg.err == nil:
		a.showResult(*msg.output, msg.date)
		return nil

	case errors.As(msg.err, &verr):
		s.form.err = verr
		a.view = viewForm
		return nil

	case errors.Is(msg.err, diary.ErrBusy):
		return nil

	default:
		s.processErr = msg.err
		a.showError(viewForm)
		return nil
	}
}

func (a *App) showError(back view) {
	a.back = back
	a.view = viewError
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type providerReadyMsg struct{ provider llm.Provider }
type providerErrorMsg struct{ error }

type generatedMsg struct {
	output *diary.Output
	date   time.Time
	err    error
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSetup:
		return a.renderSetup()
	case viewSkills:
		return a.renderSkills()
	case viewProcessing:
		return a.renderProcessing()
	case viewResult:
		return a.renderResult()
	case viewHistory:
		return a.renderHistory()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderForm()
	}
}
