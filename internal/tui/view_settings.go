package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/diary/internal/config"
	"github.com/sant0-9/diary/internal/tui/styles"
)

func maskKey(k string) string {
	switch {
	case k == "":
		return "Not set"
	case len(k) > 8:
		return k[:4] + "****" + k[len(k)-4:]
	default:
		return "****"
	}
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	s := a.state

	switch s.settingsMode {
	case "model":
		provider := config.GetProvider(s.config.Provider)
		switch {
		case key.Matches(msg, keys.Quit):
			s.settingsMode = ""
		case key.Matches(msg, keys.Up):
			if s.settingsSelected > 0 {
				s.settingsSelected--
			}
		case key.Matches(msg, keys.Down):
			if provider != nil && s.settingsSelected < len(provider.Models)-1 {
				s.settingsSelected++
			}
		case key.Matches(msg, keys.Enter):
			if provider != nil && s.settingsSelected < len(provider.Models) {
				s.config.Model = provider.Models[s.settingsSelected]
				s.settingsMode = ""
				return a.saveSettings(), true
			}
		}
		return nil, true

	case "apikey":
		switch {
		case key.Matches(msg, keys.Quit):
			s.apiKeyInput.Blur()
			s.settingsMode = ""
			return nil, true
		case key.Matches(msg, keys.Enter):
			s.config.APIKey = strings.TrimSpace(s.apiKeyInput.Value())
			s.apiKeyInput.Blur()
			s.settingsMode = ""
			return a.saveSettings(), true
		}
		return nil, false
	}

	switch {
	case key.Matches(msg, keys.Quit):
		a.view = viewForm
		return nil, true
	}

	switch msg.String() {
	case "p":
		s.setupStep = setupProvider
		a.view = viewSetup
	case "m":
		s.settingsMode = "model"
		s.settingsSelected = 0
	case "k":
		s.settingsMode = "apikey"
		s.apiKeyInput.Reset()
		return tea.Batch(s.apiKeyInput.Focus(), textinput.Blink), true
	}
	return nil, true
}

// saveSettings persists the config and reconnects the provider
func (a *App) saveSettings() tea.Cmd {
	return a.finishSetup()
}

func (a *App) renderSettings() string {
	switch a.state.settingsMode {
	case "model":
		return a.renderSettingsModel()
	case "apikey":
		return a.renderSettingsAPIKey()
	default:
		return a.renderSettingsMain()
	}
}

func (a *App) renderSettingsMain() string {
	cfg := a.state.config

	providerName := cfg.Provider
	if p := config.GetProvider(cfg.Provider); p != nil {
		providerName = p.Name
	}

	exportDir := cfg.ExportDir
	if exportDir == "" {
		exportDir = "current directory"
	}
	rules := cfg.RulesPath
	if rules == "" {
		rules = fmt.Sprintf("built in (v%d)", a.state.classifier.RuleSet().Version())
	}

	configLines := []string{
		fmt.Sprintf("  Provider: %s", providerName),
		fmt.Sprintf("  Model:    %s", cfg.Model),
		fmt.Sprintf("  API Key:  %s", maskKey(cfg.APIKey)),
	}
	if cfg.BaseURL != "" {
		configLines = append(configLines, fmt.Sprintf("  Base URL: %s", cfg.BaseURL))
	}
	configLines = append(configLines,
		"",
		fmt.Sprintf("  Rules:    %s", rules),
		fmt.Sprintf("  Export:   %s", exportDir),
		fmt.Sprintf("  Timeout:  %s", cfg.GenerationTimeout),
		fmt.Sprintf("  History:  %d entries", cfg.HistoryLimit),
	)

	actions := []string{
		"  [p] Change provider",
		"  [m] Change model",
		"  [k] Update API key",
	}

	return a.page("Settings", "[Esc] Back",
		styles.Box.Width(56).Render(strings.Join(configLines, "\n")),
		styles.Box.Width(56).Render(strings.Join(actions, "\n")),
	)
}

func (a *App) renderSettingsModel() string {
	provider := config.GetProvider(a.state.config.Provider)
	if provider == nil || len(provider.Models) == 0 {
		return a.page("Select Model", "[Esc] Cancel",
			styles.Subtitle.Render("This provider has no model list. Set model in the config file."))
	}

	var lines []string
	for i, model := range provider.Models {
		cursor := "  "
		if i == a.state.settingsSelected {
			cursor = "> "
		}
		current := ""
		if model == a.state.config.Model {
			current = " (current)"
		}
		line := cursor + model + current
		if i == a.state.settingsSelected {
			line = styles.Selected.Render(line)
		}
		lines = append(lines, line)
	}

	return a.page("Select Model", "[Up/Down] Navigate  [Enter] Select  [Esc] Cancel",
		styles.Subtitle.Render("Provider: "+provider.Name),
		styles.Box.Width(50).Render(strings.Join(lines, "\n")),
	)
}

func (a *App) renderSettingsAPIKey() string {
	inputBox := styles.Box.
		Width(50).
		BorderForeground(styles.ColorPrimary).
		Render(a.state.apiKeyInput.View())

	return a.page("Update API Key", "[Enter] Save  [Esc] Cancel",
		styles.Subtitle.Render("Enter your new API key"),
		inputBox,
	)
}
