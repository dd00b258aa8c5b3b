package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"openproject/internal/application/commands"
	"openproject/internal/ports"
)

// RegisterWriteTools adds the tools that change the cache document.
func RegisterWriteTools(s *server.MCPServer, store ports.CacheStore) {
	s.AddTool(recordLaunchTool(), recordLaunchHandler(store))
	s.AddTool(setEditorTool(), setEditorHandler(store))
}

// --- record_launch ---

func recordLaunchTool() mcp.Tool {
	return mcp.NewTool("record_launch",
		mcp.WithDescription("Count a launch of a cached project so it ranks higher in later searches. Optionally remember the launcher used for it."),
		mcp.WithString("path",
			mcp.Description("Absolute project path as returned by search_projects"),
			mcp.Required(),
		),
		mcp.WithString("ide_path",
			mcp.Description("Launcher command to remember for this project"),
		),
	)
}

func recordLaunchHandler(store ports.CacheStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		open := commands.NewOpenCommand(store, nil, req.GetString("path", ""), req.GetString("ide_path", ""))
		if err := open.Validate(); err != nil {
			return toolError(err)
		}

		project, err := open.Record()
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Recorded launch of %s (%d hits)", project.Name, project.Hits)), nil
	}
}

// --- set_editor ---

func setEditorTool() mcp.Tool {
	return mcp.NewTool("set_editor",
		mcp.WithDescription("Set the launcher command for a project type. An empty command restores the default."),
		mcp.WithString("type",
			mcp.Description("Project type label (e.g. rust, react_ts, unknown)"),
			mcp.Required(),
		),
		mcp.WithString("command",
			mcp.Description("Launcher command, e.g. \"code\" or \"zed\""),
		),
	)
}

func setEditorHandler(store ports.CacheStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		msg, err := commands.NewSetEditorCommand(store, req.GetString("type", ""), req.GetString("command", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}
