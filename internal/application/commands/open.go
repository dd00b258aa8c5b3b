package commands

import (
	"context"
	"fmt"

	"openproject/internal/application"
	"openproject/internal/domain"
	"openproject/internal/ports"
)

// OpenResult contains the result of opening a project
type OpenResult struct {
	Project *domain.Project
	Command string // Launcher command used, empty for the platform default
	Message string
}

// OpenCommand opens a cached project and records the launch
type OpenCommand struct {
	store    ports.CacheStore
	launcher ports.Launcher
	Path     string
	With     string // Launcher to use and remember for this project
}

// NewOpenCommand creates a new OpenCommand
func NewOpenCommand(store ports.CacheStore, launcher ports.Launcher, path, with string) *OpenCommand {
	return &OpenCommand{
		store:    store,
		launcher: launcher,
		Path:     path,
		With:     with,
	}
}

// Validate checks the command input
func (c *OpenCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Resolve finds the cached project and the launcher command for it.
// The explicit launcher wins, then the project's remembered launcher,
// then the launcher configured for its type.
func (c *OpenCommand) Resolve() (*domain.Project, string, error) {
	if err := c.Validate(); err != nil {
		return nil, "", err
	}

	cfg, err := c.store.Read()
	if err != nil {
		return nil, "", fmt.Errorf("failed to read cache: %w", err)
	}
	for _, p := range cfg.Cache {
		if p.Path != c.Path {
			continue
		}
		project := p
		return &project, ResolveLauncher(project, cfg.Editor, c.With), nil
	}
	return nil, "", fmt.Errorf("project %s: %w", c.Path, application.ErrNotFound)
}

// Record counts a launch of the project
func (c *OpenCommand) Record() (*domain.Project, error) {
	project, err := c.store.RecordLaunch(c.Path, c.With)
	if err != nil {
		return nil, fmt.Errorf("failed to record launch: %w", err)
	}
	return project, nil
}

// Execute opens the project and records the launch
func (c *OpenCommand) Execute(ctx context.Context) (*OpenResult, error) {
	project, command, err := c.Resolve()
	if err != nil {
		return nil, err
	}

	if err := c.launcher.Open(project.Path, command); err != nil {
		return nil, &application.LaunchError{Path: project.Path, Command: command, Err: err}
	}

	updated, err := c.Record()
	if err != nil {
		return nil, err
	}

	return &OpenResult{
		Project: updated,
		Command: command,
		Message: fmt.Sprintf("Opened %s (%d hits)", updated.Name, updated.Hits),
	}, nil
}

// ResolveLauncher picks the launcher command for a project
func ResolveLauncher(project domain.Project, editor map[string]string, with string) string {
	switch {
	case with != "":
		return with
	case project.IDEPath != "":
		return project.IDEPath
	default:
		return editor[project.Type]
	}
}
