package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#06B6D4")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorError     = lipgloss.Color("#EF4444")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorWhite     = lipgloss.Color("#F9FAFB")
	ColorDark      = lipgloss.Color("#1F2937")

	Logo = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	Subtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)

	StatusBar = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Form labels, focused and not
	Label = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(14)

	LabelFocused = Label.
			Foreground(ColorSecondary).
			Bold(true)

	Selected = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	// Skill chips
	Chip = lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(ColorDark).
		Padding(0, 1)

	ChipFocused = Chip.
			Background(ColorPrimary)

	Error = lipgloss.NewStyle().
		Foreground(ColorError)

	Success = lipgloss.NewStyle().
		Foreground(ColorSuccess)
)
