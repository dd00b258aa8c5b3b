package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Language family colors for type badges
	TypeRust   = lipgloss.Color("#F97316") // Orange
	TypeMobile = lipgloss.Color("#60A5FA") // Blue
	TypeWeb    = lipgloss.Color("#EC4899") // Pink
	TypeScript = lipgloss.Color("#6366F1") // Indigo
	TypeOther  = Muted

	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Result rows
	ProjectName = lipgloss.NewStyle().
			Bold(true)

	ProjectPath = lipgloss.NewStyle().
			Foreground(Muted)

	ProjectHits = lipgloss.NewStyle().
			Foreground(Warning)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	Cursor = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		SetString("▶ ")

	NoCursor = lipgloss.NewStyle().SetString("  ")

	Badge = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(White)

	// Input
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Messages
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// TypeColor returns the badge color for a project type label
func TypeColor(projectType string) lipgloss.Color {
	switch projectType {
	case "rust":
		return TypeRust
	case "dart", "apple-ide", "android":
		return TypeMobile
	case "nuxt", "vue", "react", "react_ts", "hexo":
		return TypeWeb
	case "typescript", "javascript", "editor-extension":
		return TypeScript
	default:
		return TypeOther
	}
}

// TypeBadge renders a project type label as a colored badge
func TypeBadge(projectType string) string {
	return Badge.Background(TypeColor(projectType)).Render(projectType)
}
