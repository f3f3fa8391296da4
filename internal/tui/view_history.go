package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/diary/internal/diary"
	"github.com/sant0-9/diary/internal/tui/styles"
)

func (a *App) openHistory() {
	a.back = a.view
	a.state.historySelected = 0
	a.view = viewHistory
}

func (a *App) handleHistoryKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	s := a.state
	entries := s.orchestrator.History()

	switch {
	case key.Matches(msg, keys.Quit):
		a.view = a.back
		if a.view == viewResult && s.result == nil {
			a.view = viewForm
		}
	case key.Matches(msg, keys.Up):
		if s.historySelected > 0 {
			s.historySelected--
		}
	case key.Matches(msg, keys.Down):
		if s.historySelected < len(entries)-1 {
			s.historySelected++
		}
	case key.Matches(msg, keys.Enter):
		if s.historySelected < len(entries) {
			e := entries[s.historySelected]
			a.showResult(s.orchestrator.LoadFromHistory(e), e.DateCreated)
		}
	}
	return nil, true
}

func (a *App) renderHistory() string {
	s := a.state
	entries := s.orchestrator.History()

	var content string
	if len(entries) == 0 {
		content = styles.Box.
			Width(a.boxWidth()).
			Foreground(styles.ColorMuted).
			Render("No entries yet.\n\nGenerated diaries from this session show up here.")
	} else {
		lines := make([]string, len(entries))
		for i, e := range entries {
			line := fmt.Sprintf("%s  %s", e.DateCreated.Format(diary.DateLayout),
				truncate(strings.Join(e.SkillsUsed, ", "), a.boxWidth()-18))
			if i == s.historySelected {
				lines[i] = styles.Selected.Render("> " + line)
			} else {
				lines[i] = "  " + line
			}
		}
		content = styles.Box.
			Width(a.boxWidth()).
			BorderForeground(styles.ColorPrimary).
			Render(strings.Join(lines, "\n"))
	}

	desc := styles.Subtitle.Render(fmt.Sprintf("Last %d entries, newest first", s.config.HistoryLimit))
	return a.page("History", "[Up/Down] Navigate  [Enter] Open  [Esc] Back", desc, content)
}
