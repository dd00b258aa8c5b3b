package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"openproject/internal/adapters/cachefile"
	"openproject/internal/adapters/editor"
	"openproject/internal/adapters/filesystem"
	"openproject/internal/adapters/gitrepo"
	"openproject/internal/adapters/tui"
	"openproject/internal/application/commands"
	"openproject/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	prefs, err := config.Load(config.New(""))
	if err != nil {
		return err
	}
	mode, err := commands.ParseMatchMode(prefs.MatchMode)
	if err != nil {
		return err
	}

	// The screen belongs to the TUI; logs go to a file only when debugging.
	var logOut io.Writer = io.Discard
	if prefs.Debug {
		path := filepath.Join(filepath.Dir(prefs.CachePath), "debug.log")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, prefs)

	// Initialize adapters
	store := cachefile.NewStore(prefs.CachePath, logger)
	walker := filesystem.NewWalker(
		filesystem.WithLogger(logger),
		filesystem.WithExclude(prefs.Exclude),
		filesystem.WithMaxDepth(prefs.MaxDepth),
	)
	searcher := commands.NewSearcher(store, walker, prefs.Workspace, logger)

	app := tui.NewApp(tui.Deps{
		Searcher: searcher,
		Store:    store,
		Launcher: editor.NewLauncher(),
		Remotes:  gitrepo.NewResolver(),
		Mode:     mode,
		Logger:   logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
