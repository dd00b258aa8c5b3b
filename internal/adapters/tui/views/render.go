package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"openproject/internal/adapters/tui/styles"
	"openproject/internal/application"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a status message styled by severity
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderProject renders one result row: cursor, name, type badge, hits
// and the path truncated to width
func RenderProject(p application.Project, selected bool, width int) string {
	cursor := styles.NoCursor.String()
	name := styles.ProjectName.Render(p.Name)
	if selected {
		cursor = styles.Cursor.String()
		name = styles.RowSelected.Render(p.Name)
	}

	head := cursor + name + " " + styles.TypeBadge(p.Type)
	if p.Hits > 0 {
		head += " " + styles.ProjectHits.Render(fmt.Sprintf("★ %d", p.Hits))
	}

	path := p.Path
	if avail := width - lipgloss.Width(head) - 3; avail > 0 {
		if runes := []rune(path); len(runes) > avail {
			path = "…" + string(runes[len(runes)-avail+1:])
		}
	}
	return head + "  " + styles.ProjectPath.Render(path)
}
