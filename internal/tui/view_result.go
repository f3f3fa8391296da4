package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/diary/internal/diary"
	"github.com/sant0-9/diary/internal/export"
	"github.com/sant0-9/diary/internal/tui/styles"
)

func (a *App) showResult(out diary.Output, date time.Time) {
	s := a.state
	s.result = &out
	s.resultDate = date
	s.viewport.SetContent(export.Text(out))
	s.viewport.GotoTop()
	a.view = viewResult
}

func (a *App) handleResultKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	s := a.state

	switch {
	case key.Matches(msg, keys.Quit):
		a.view = viewForm
		return nil, true
	case key.Matches(msg, keys.History):
		a.openHistory()
		return nil, true
	}

	switch msg.String() {
	case "c":
		if err := export.Copy(*s.result); err != nil {
			s.notice = styles.Error.Render("Copy failed: " + err.Error())
		} else {
			s.notice = styles.Success.Render("Copied to clipboard!")
		}
		return nil, true

	case "s", "m", "p":
		format := export.FormatText
		switch msg.String() {
		case "m":
			format = export.FormatMarkdown
		case "p":
			format = export.FormatPDF
		}
		path, err := export.Save(s.config.ExportDir, s.resultDate, format, *s.result)
		if err != nil {
			s.logger.Error().Err(err).Msg("save diary")
			s.notice = styles.Error.Render("Save failed: " + err.Error())
		} else {
			s.logger.Info().Str("path", path).Msg("diary saved")
			s.notice = styles.Success.Render("Saved to " + path)
		}
		return nil, true

	case "r":
		return a.startGeneration(s.lastInputs), true

	case "n":
		s.orchestrator.Reset()
		s.result = nil
		date := s.form.date.Value()
		s.form = newForm(s.now())
		s.form.date.SetValue(date)
		a.view = viewForm
		return nil, true
	}

	return nil, false
}

func (a *App) renderResult() string {
	s := a.state
	if s.result == nil {
		return a.renderForm()
	}

	title := styles.Subtitle.Render(fmt.Sprintf("%s  ·  %s hours  ·  %d skills",
		s.resultDate.Format(diary.DateLayout), s.result.HoursWorked, len(s.result.SkillsUsed)))

	body := styles.Box.
		Width(a.boxWidth()).
		BorderForeground(styles.ColorPrimary).
		Render(s.viewport.View())

	status := "[c] Copy  [s] Save .txt  [m] Save .md  [p] Save .pdf  [r] Regenerate  [n] New  [Ctrl+R] History  [Esc] Back"
	return a.page(s.result.Title, status, title, body, s.notice)
}
