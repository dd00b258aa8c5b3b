package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	flag "github.com/spf13/pflag"

	"openproject/internal/adapters/cachefile"
	"openproject/internal/adapters/filesystem"
	"openproject/internal/adapters/gitrepo"
	mcpadapter "openproject/internal/adapters/mcp"
	"openproject/internal/application/commands"
	"openproject/internal/config"
)

func main() {
	configDir := flag.String("config-dir", "", "directory holding config.toml")
	flag.Parse()

	prefs, err := config.Load(config.New(*configDir))
	if err != nil {
		log.Fatal("openproject-mcp: failed to load config", "error", err)
	}

	// stdout carries the protocol; logs go to stderr.
	logger := config.NewLogger(os.Stderr, prefs)

	store := cachefile.NewStore(prefs.CachePath, logger)
	walker := filesystem.NewWalker(
		filesystem.WithLogger(logger),
		filesystem.WithExclude(prefs.Exclude),
		filesystem.WithMaxDepth(prefs.MaxDepth),
	)
	searcher := commands.NewSearcher(store, walker, prefs.Workspace, logger)

	mcpServer := server.NewMCPServer(
		"openproject-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, searcher, store, gitrepo.NewResolver())
	mcpadapter.RegisterWriteTools(mcpServer, store)

	logger.Info("serving", "roots", len(prefs.Workspace), "cache", prefs.CachePath)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal("openproject-mcp: server stopped", "error", err)
	}
}
