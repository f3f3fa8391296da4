package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/diary/internal/diary"
	"github.com/sant0-9/diary/internal/tui/styles"
)

func (a *App) renderForm() string {
	f := &a.state.form
	w := a.boxWidth()

	row := func(fl field, label, value string) string {
		style := styles.Label
		if f.focus == fl {
			style = styles.LabelFocused
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), value)
	}

	toggle := func(options []string, current string) string {
		parts := make([]string, len(options))
		for i, o := range options {
			if o == current {
				parts[i] = styles.Selected.Render("(•) " + o)
			} else {
				parts[i] = styles.Subtitle.Render("( ) " + o)
			}
		}
		return strings.Join(parts, "  ")
	}

	modes := []diary.BlockerMode{diary.BlockerAI, diary.BlockerNone, diary.BlockerCustom}
	modeLabels := make([]string, len(modes))
	for i, m := range modes {
		modeLabels[i] = m.Label()
	}

	rows := []string{
		row(fieldDate, "Date", f.date.View()),
		row(fieldTopic, "Topic", f.topic.View()),
		row(fieldHours, "Hours", f.hours.View()),
		row(fieldSession, "Session", toggle(
			[]string{string(diary.SessionConducted), string(diary.SessionSelfStudy)},
			string(f.session))),
		row(fieldSkills, "Skills", a.renderSkillChips(w-16)),
		row(fieldBlockerMode, "Blockers", toggle(modeLabels, f.blockerMode.Label())),
	}
	if f.blockerMode == diary.BlockerCustom {
		rows = append(rows, row(fieldBlockerInput, "", f.blocker.View()))
	}
	rows = append(rows, row(fieldLink, "Reference", f.link.View()))

	formBox := styles.Box.
		Width(w).
		BorderForeground(styles.ColorPrimary).
		Render(strings.Join(rows, "\n\n"))

	var hint string
	if f.focus == fieldSkills && len(f.skills) > 0 {
		name := f.skills[f.skillCursor]
		if kw := f.matchFor(name); kw != "" {
			hint = styles.Subtitle.Render(fmt.Sprintf("%s matched %q", name, strings.TrimSpace(kw)))
		} else {
			hint = styles.Subtitle.Render(name + " added by hand")
		}
	}

	var errLine string
	if f.err != nil {
		errLine = styles.Error.Render(f.err.Error())
	}

	return a.page("Internship Diary", a.formStatus(), a.providerLine(), formBox, hint, errLine)
}

func (a *App) renderSkillChips(width int) string {
	f := &a.state.form
	if len(f.skills) == 0 {
		return styles.Subtitle.Render("type a topic, or press / to search")
	}

	var lines []string
	var line []string
	lineWidth := 0
	for i, s := range f.skills {
		style := styles.Chip
		if f.focus == fieldSkills && i == f.skillCursor {
			style = styles.ChipFocused
		}
		chip := style.Render(s)
		cw := lipgloss.Width(chip) + 1
		if lineWidth+cw > width && len(line) > 0 {
			lines = append(lines, strings.Join(line, " "))
			line, lineWidth = nil, 0
		}
		line = append(line, chip)
		lineWidth += cw
	}
	lines = append(lines, strings.Join(line, " "))
	return strings.Join(lines, "\n")
}

func (a *App) providerLine() string {
	s := a.state
	name := s.config.Provider
	if s.config.Model != "" {
		name += " / " + s.config.Model
	}
	switch {
	case s.providerError != nil:
		return styles.Error.Render(truncate(name+": "+s.providerError.Error(), a.boxWidth()))
	case s.providerReady:
		return styles.Success.Render(name)
	default:
		return styles.Subtitle.Render(name + " (connecting...)")
	}
}

func (a *App) formStatus() string {
	switch a.state.form.focus {
	case fieldSession, fieldBlockerMode:
		return "[Space] Change  [Tab] Next  [Ctrl+G] Generate  [F1] Help"
	case fieldSkills:
		return "[←/→] Select  [x] Remove  [/] Search  [Ctrl+G] Generate  [F1] Help"
	default:
		return "[Tab] Next  [Ctrl+G] Generate  [Ctrl+R] History  [Ctrl+O] Settings  [F1] Help  [Esc] Quit"
	}
}
