package tui

import (
	"strings"

	"github.com/sant0-9/diary/internal/tui/styles"
)

func (a *App) renderHelp() string {
	form := []string{
		"  Tab / Enter     Next field",
		"  Shift+Tab       Previous field",
		"  Space           Toggle session or blocker mode",
		"  ← / →           Pick a skill in the skills row",
		"  x               Remove the picked skill",
		"  /               Search the skill catalog",
		"  Ctrl+G          Generate the entry",
		"  Ctrl+R          History",
		"  Ctrl+O          Settings",
		"  Esc             Go back / Quit",
	}

	result := []string{
		"  c               Copy to clipboard",
		"  s / m / p       Save as .txt / .md / .pdf",
		"  r               Regenerate",
		"  n               New entry",
	}

	notes := styles.Subtitle.Render("Skills are suggested from the topic as you type.\nEditing the topic replaces the suggestions.")

	return a.page("Help", "[Esc] Back",
		styles.Subtitle.Render("Form"),
		styles.Box.Width(56).Render(strings.Join(form, "\n")),
		styles.Subtitle.Render("Result"),
		styles.Box.Width(56).Render(strings.Join(result, "\n")),
		notes,
	)
}
