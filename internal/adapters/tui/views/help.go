package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"openproject/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "f1"),
		key.WithHelp("esc/q/f1", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
	roots []string
}

// NewHelpModel creates a new help view model listing the workspace roots
func NewHelpModel(roots []string) *HelpModel {
	return &HelpModel{roots: roots}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToPickerMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("openproject help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Search"))
	b.WriteString("\n")
	b.WriteString(helpLine("type", "Filter projects by name"))
	b.WriteString(helpLine("↑ / ↓ / Ctrl+P / Ctrl+N", "Move up/down"))
	b.WriteString(helpLine("PgUp / PgDn", "Previous/next page"))
	b.WriteString(helpLine("Ctrl+R", "Ignore the cache and scan again"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("Enter", "Open in the configured launcher"))
	b.WriteString(helpLine("Ctrl+Y", "Copy project path"))
	b.WriteString(helpLine("Ctrl+O", "Open repository page"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("F1", "Toggle help"))
	b.WriteString(helpLine("Esc", "Clear search, quit when empty"))
	b.WriteString(helpLine("Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Workspace"))
	b.WriteString("\n")
	if len(m.roots) == 0 {
		b.WriteString(styles.MutedText.Render("  none configured: set workspace in config.toml or OPENPROJECT_WORKSPACE"))
		b.WriteString("\n")
	}
	for _, root := range m.roots {
		b.WriteString(styles.MutedText.Render("  " + root))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("f1"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 26)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if n := len([]rune(s)); n < length {
		return s + strings.Repeat(" ", length-n)
	}
	return s
}
