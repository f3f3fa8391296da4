package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/diary/internal/tui/styles"
)

const maxSkillResults = 10

func (a *App) skillResults() []string {
	s := a.state
	res := s.classifier.RuleSet().Catalog().Search(s.skillQuery.Value(), s.form.skills)
	if len(res) > maxSkillResults {
		res = res[:maxSkillResults]
	}
	return res
}

func (a *App) handleSkillsKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	s := a.state

	switch {
	case key.Matches(msg, keys.Quit):
		s.skillQuery.Blur()
		a.view = viewForm
		return nil, true

	case key.Matches(msg, keys.Up):
		if s.skillSelected > 0 {
			s.skillSelected--
		}
		return nil, true

	case key.Matches(msg, keys.Down):
		if s.skillSelected < len(a.skillResults())-1 {
			s.skillSelected++
		}
		return nil, true

	case key.Matches(msg, keys.Enter):
		res := a.skillResults()
		if s.skillSelected < len(res) {
			s.form.addSkill(res[s.skillSelected])
			s.form.skillCursor = len(s.form.skills) - 1
		}
		s.skillQuery.Reset()
		s.skillSelected = 0
		return nil, true
	}

	return nil, false
}

func (a *App) renderSkills() string {
	s := a.state

	queryBox := styles.Box.
		Width(a.boxWidth()).
		BorderForeground(styles.ColorSecondary).
		Render(s.skillQuery.View())

	var list string
	res := a.skillResults()
	switch {
	case strings.TrimSpace(s.skillQuery.Value()) == "":
		list = styles.Subtitle.Render(
			"Start typing to search the catalog of " +
				strconv.Itoa(s.classifier.RuleSet().Catalog().Count()) + " skills")
	case len(res) == 0:
		list = styles.Subtitle.Render("No matching skills")
	default:
		lines := make([]string, len(res))
		for i, name := range res {
			if i == s.skillSelected {
				lines[i] = styles.Selected.Render("> " + name)
			} else {
				lines[i] = "  " + name
			}
		}
		list = styles.Box.Width(a.boxWidth()).Render(strings.Join(lines, "\n"))
	}

	selected := styles.Subtitle.Render("Selected: none")
	if len(s.form.skills) > 0 {
		selected = styles.Subtitle.Render("Selected: " + strings.Join(s.form.skills, ", "))
	}

	return a.page("Add Skill", "[Up/Down] Navigate  [Enter] Add  [Esc] Done", queryBox, list, selected)
}
