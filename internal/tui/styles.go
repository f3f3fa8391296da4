package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/diary/internal/tui/styles"
)

// truncate shortens text to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func (a *App) center(s string) string {
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, s)
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}

func (a *App) boxWidth() int {
	return max(20, min(72, a.width-4))
}

// page renders a titled, centered screen with a status line
func (a *App) page(title string, status string, blocks ...string) string {
	var b strings.Builder
	b.WriteString(a.center(styles.Title.Render(title)))
	b.WriteString("\n\n")
	for _, block := range blocks {
		if block == "" {
			continue
		}
		b.WriteString(a.center(block))
		b.WriteString("\n\n")
	}
	b.WriteString(a.center(styles.StatusBar.Render(status)))
	return a.centerVertically(b.String())
}
