package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Difficulty colors
	Beginner     = lipgloss.Color("#34D399")
	Intermediate = lipgloss.Color("#FBBF24")
	Advanced     = lipgloss.Color("#F87171")

	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Checklist rows
	TaskDone = lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true)

	TaskOpen = lipgloss.NewStyle()

	TaskSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	CheckDone = "[x] "
	CheckOpen = "[ ] "

	// Progress bar
	BarFilled = lipgloss.NewStyle().Foreground(Secondary)
	BarEmpty  = lipgloss.NewStyle().Foreground(Muted)

	// Banner shown when the project is a local placeholder
	Banner = lipgloss.NewStyle().
		Foreground(Warning).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Warning).
		Padding(0, 1)

	SectionLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	SharePost = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// DifficultyColor returns the badge color for a difficulty level
func DifficultyColor(d string) lipgloss.Color {
	switch d {
	case "beginner":
		return Beginner
	case "intermediate":
		return Intermediate
	case "advanced":
		return Advanced
	default:
		return Muted
	}
}
