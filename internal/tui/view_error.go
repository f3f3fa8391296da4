package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/diary/internal/diary"
	"github.com/sant0-9/diary/internal/tui/styles"
)

// errorText is what the user sees. Generation causes stay in the log.
func errorText(err error) string {
	var gerr *diary.GenerationError
	if errors.As(err, &gerr) {
		return gerr.Message
	}
	if err == nil {
		return "Unknown error"
	}
	return err.Error()
}

// suggestions looks at the underlying cause to hint at a fix
func suggestions(err error) []string {
	if err == nil {
		return nil
	}
	cause := err
	if inner := errors.Unwrap(err); inner != nil {
		cause = inner
	}
	lower := strings.ToLower(cause.Error())

	switch {
	case strings.Contains(lower, "api key") || strings.Contains(lower, "401") || strings.Contains(lower, "unauthorized"):
		return []string{"Check your API key in ~/.config/diary/config.yaml", "Or press [s] to open settings"}
	case strings.Contains(lower, "ollama"):
		return []string{"Make sure Ollama is running: ollama serve", "Or switch to a cloud provider in settings"}
	case strings.Contains(lower, "deadline") || strings.Contains(lower, "timeout"):
		return []string{"The provider took too long to answer", "Raise generation_timeout in the config"}
	case strings.Contains(lower, "connection") || strings.Contains(lower, "connect"):
		return []string{"Check your internet connection", "Or try using Ollama for offline mode"}
	case strings.Contains(lower, "rate limit") || strings.Contains(lower, "429"):
		return []string{"You've hit the API rate limit", "Wait a moment and try again"}
	case strings.Contains(lower, "decode") || strings.Contains(lower, "missing fields") || strings.Contains(lower, "empty"):
		return []string{"The model answered in an unexpected format", "Retrying usually helps, or pick another model"}
	case strings.Contains(lower, "no provider"):
		return []string{"Press [s] to configure a provider"}
	}
	return nil
}

func (a *App) handleErrorKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.state.processErr = nil
		a.view = a.back
		return nil, true
	}

	switch msg.String() {
	case "r":
		if a.back == viewForm {
			a.state.processErr = nil
			return a.startGeneration(a.state.lastInputs), true
		}
	case "s":
		a.state.processErr = nil
		a.state.settingsMode = ""
		a.view = viewSettings
	}
	return nil, true
}

func (a *App) renderError() string {
	w := a.boxWidth()
	err := a.state.processErr

	errBox := styles.Box.
		Width(w).
		BorderForeground(styles.ColorError).
		Render(errorText(err))

	var suggBox string
	if s := suggestions(err); len(s) > 0 {
		suggBox = styles.Box.
			Width(w).
			Render("Suggestions:\n" + strings.Join(s, "\n"))
	}

	return a.page("Something went wrong", "[r] Retry  [s] Settings  [Esc] Back", errBox, suggBox)
}
