package tui

import (
	"fmt"
	"time"

	"github.com/sant0-9/diary/internal/diary"
	"github.com/sant0-9/diary/internal/tui/styles"
)

func (a *App) renderProcessing() string {
	s := a.state
	in := s.lastInputs

	status := fmt.Sprintf("%s Writing your diary entry...", s.spinner.View())

	details := styles.Box.
		Width(a.boxWidth()).
		Render(fmt.Sprintf("Date:    %s\nTopic:   %s\nHours:   %s\nSession: %s",
			in.Date.Format(diary.DateLayout),
			truncate(in.Topic, a.boxWidth()-12),
			diary.FormatHours(in.HoursWorked),
			in.SessionType,
		))

	elapsed := styles.Subtitle.Render(fmt.Sprintf("%s elapsed", s.now().Sub(s.started).Round(time.Second)))

	return a.page("Generating", "[Esc] Cancel", status, details, elapsed)
}
