package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/diary/internal/config"
	"github.com/sant0-9/diary/internal/tui/styles"
)

const logo = `
 ____  _
|  _ \(_) __ _ _ __ _   _
| | | | |/ _' | '__| | | |
| |_| | | (_| | |  | |_| |
|____/|_|\__,_|_|   \__, |
                    |___/
`

type setupStep int

const (
	setupProvider setupStep = iota
	setupBaseURL
	setupAPIKey
)

func (a *App) handleSetupKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	s := a.state

	if key.Matches(msg, keys.Quit) {
		if s.setupStep == setupProvider {
			if !s.needsSetup {
				a.view = viewSettings
				return nil, true
			}
			a.quitting = true
			return tea.Quit, true
		}
		// Back to provider selection
		s.setupStep = setupProvider
		s.apiKeyInput.Reset()
		s.baseURLInput.Reset()
		return nil, true
	}

	switch s.setupStep {
	case setupProvider:
		switch msg.String() {
		case "up", "k":
			if s.selectedProvider > 0 {
				s.selectedProvider--
			}
		case "down", "j":
			if s.selectedProvider < len(config.Providers)-1 {
				s.selectedProvider++
			}
		case "enter":
			p := config.Providers[s.selectedProvider]
			s.config.Provider = p.ID
			s.config.Model = p.DefaultModel
			s.config.BaseURL = ""
			return a.nextSetupStep(p), true
		}
		return nil, true

	case setupBaseURL:
		if key.Matches(msg, keys.Enter) {
			v := strings.TrimSpace(s.baseURLInput.Value())
			if v == "" {
				return nil, true
			}
			s.config.BaseURL = v
			s.baseURLInput.Blur()
			return a.nextSetupStep(*config.GetProvider(s.config.Provider)), true
		}

	case setupAPIKey:
		if key.Matches(msg, keys.Enter) {
			s.config.APIKey = strings.TrimSpace(s.apiKeyInput.Value())
			s.apiKeyInput.Blur()
			return a.finishSetup(), true
		}
	}

	return nil, false
}

// nextSetupStep asks for whatever the provider still needs
func (a *App) nextSetupStep(p config.ProviderInfo) tea.Cmd {
	s := a.state
	switch {
	case p.NeedsBaseURL && s.config.BaseURL == "":
		s.setupStep = setupBaseURL
		return tea.Batch(s.baseURLInput.Focus(), textinput.Blink)
	case p.NeedsAPIKey:
		s.setupStep = setupAPIKey
		return tea.Batch(s.apiKeyInput.Focus(), textinput.Blink)
	default:
		return a.finishSetup()
	}
}

func (a *App) finishSetup() tea.Cmd {
	cfg := *a.state.config
	a.state.setupStep = setupProvider
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

func (a *App) renderSetup() string {
	switch a.state.setupStep {
	case setupBaseURL:
		return a.renderSetupInput("Enter the base URL of your endpoint:", "", a.state.baseURLInput.View())
	case setupAPIKey:
		provider := config.GetProvider(a.state.config.Provider)
		hint := ""
		if provider.SignupURL != "" {
			hint = fmt.Sprintf("Get one at: %s", provider.SignupURL)
		}
		return a.renderSetupInput(fmt.Sprintf("Enter your %s API key:", provider.Name), hint, a.state.apiKeyInput.View())
	default:
		return a.renderProviderSelection()
	}
}

func (a *App) renderProviderSelection() string {
	var b strings.Builder

	b.WriteString(a.center(styles.Logo.Render(logo)))
	b.WriteString("\n\n")

	title := lipgloss.NewStyle().
		Foreground(styles.ColorWhite).
		Bold(true).
		Render("Welcome! Choose your LLM provider:")
	b.WriteString(a.center(title))
	b.WriteString("\n\n")

	var providerLines []string
	for i, p := range config.Providers {
		if i == a.state.selectedProvider {
			providerLines = append(providerLines,
				styles.Selected.Render(fmt.Sprintf("> [x] %-12s %s", p.Name, p.Description)))
			continue
		}
		providerLines = append(providerLines,
			styles.Subtitle.Render(fmt.Sprintf("  [ ] %-12s %s", p.Name, p.Description)))
	}

	providerBox := styles.Box.
		Width(56).
		Render(strings.Join(providerLines, "\n"))
	b.WriteString(a.center(providerBox))
	b.WriteString("\n\n")

	b.WriteString(a.center(styles.StatusBar.Render("[j/k] Navigate  [Enter] Select  [Esc] Quit")))

	return a.centerVertically(b.String())
}

func (a *App) renderSetupInput(title, hint, input string) string {
	var b strings.Builder

	b.WriteString(a.center(styles.Logo.Render(logo)))
	b.WriteString("\n\n")

	b.WriteString(a.center(lipgloss.NewStyle().Foreground(styles.ColorWhite).Bold(true).Render(title)))
	b.WriteString("\n\n")

	if hint != "" {
		b.WriteString(a.center(styles.Subtitle.Render(hint)))
		b.WriteString("\n\n")
	}

	inputBox := styles.Box.
		Width(60).
		BorderForeground(styles.ColorSecondary).
		Render(input)
	b.WriteString(a.center(inputBox))
	b.WriteString("\n\n")

	b.WriteString(a.center(styles.StatusBar.Render("[Enter] Continue  [Esc] Back")))

	return a.centerVertically(b.String())
}
