package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"openproject/internal/application/commands"
	"openproject/internal/domain"
	"openproject/internal/ports"
)

// RegisterReadTools adds the project lookup tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, searcher *commands.Searcher, store ports.CacheStore, remotes ports.RemoteResolver) {
	s.AddTool(searchTool(), searchHandler(searcher, false))
	s.AddTool(rescanTool(), searchHandler(searcher, true))
	s.AddTool(listEditorsTool(), listEditorsHandler(store))
	s.AddTool(remoteTool(), remoteHandler(remotes))
}

// --- search_projects ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_projects",
		mcp.WithDescription("Search local git projects by name. Answers from the cache and scans the workspace only when nothing cached matches. Names starting with the keyword come first, then by launch count."),
		mcp.WithString("keyword",
			mcp.Description("Text to look for in project names. Empty lists every project."),
		),
		mcp.WithString("mode",
			mcp.Description("Match mode: literal (default), regexp or fuzzy"),
			mcp.Enum("literal", "regexp", "fuzzy"),
		),
	)
}

// --- rescan_projects ---

func rescanTool() mcp.Tool {
	return mcp.NewTool("rescan_projects",
		mcp.WithDescription("Ignore the cache, scan every workspace root again and search the fresh result. Launch counts are preserved."),
		mcp.WithString("keyword",
			mcp.Description("Text to look for in project names. Empty lists every project."),
		),
		mcp.WithString("mode",
			mcp.Description("Match mode: literal (default), regexp or fuzzy"),
			mcp.Enum("literal", "regexp", "fuzzy"),
		),
	)
}

func searchHandler(searcher *commands.Searcher, fresh bool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mode, err := commands.ParseMatchMode(req.GetString("mode", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewSearchCommand(searcher, req.GetString("keyword", ""), mode)
		cmd.Fresh = fresh
		projects, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(projects, formatProject)
	}
}

// --- list_editors ---

func listEditorsTool() mcp.Tool {
	return mcp.NewTool("list_editors",
		mcp.WithDescription("List the launcher command configured for each project type. Empty commands fall back to $VISUAL, $EDITOR or the system opener."),
	)
}

func listEditorsHandler(store ports.CacheStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := commands.NewListEditorsCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(entries, formatEditor)
	}
}

// --- project_remote ---

func remoteTool() mcp.Tool {
	return mcp.NewTool("project_remote",
		mcp.WithDescription("Get the web address of a project's origin remote."),
		mcp.WithString("path",
			mcp.Description("Absolute project path as returned by search_projects"),
			mcp.Required(),
		),
	)
}

func remoteHandler(remotes ports.RemoteResolver) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		url, err := remotes.RemoteURL(path)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(url), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatProject(p domain.Project) string {
	return fmt.Sprintf("%s  %s  %s  hits=%d", p.Name, p.Type, p.Path, p.Hits)
}

func formatEditor(e commands.EditorEntry) string {
	if e.Command == "" {
		return fmt.Sprintf("%s  (default)", e.Type)
	}
	return fmt.Sprintf("%s  %s", e.Type, e.Command)
}
