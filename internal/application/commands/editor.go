package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"openproject/internal/application"
	"openproject/internal/ports"
)

// EditorEntry is one launcher map entry
type EditorEntry struct {
	Type    string
	Command string
}

// ListEditorsCommand lists the launcher map sorted by project type
type ListEditorsCommand struct {
	store ports.CacheStore
}

// NewListEditorsCommand creates a new ListEditorsCommand
func NewListEditorsCommand(store ports.CacheStore) *ListEditorsCommand {
	return &ListEditorsCommand{store: store}
}

// Execute runs the list editors command
func (c *ListEditorsCommand) Execute(ctx context.Context) ([]EditorEntry, error) {
	cfg, err := c.store.Read()
	if err != nil {
		return nil, err
	}

	entries := make([]EditorEntry, 0, len(cfg.Editor))
	for t, cmd := range cfg.Editor {
		entries = append(entries, EditorEntry{Type: t, Command: cmd})
	}
	slices.SortFunc(entries, func(a, b EditorEntry) int {
		return strings.Compare(a.Type, b.Type)
	})
	return entries, nil
}

// SetEditorCommand sets the launcher command for a project type
type SetEditorCommand struct {
	store   ports.CacheStore
	Type    string
	Command string
}

// NewSetEditorCommand creates a new SetEditorCommand
func NewSetEditorCommand(store ports.CacheStore, projectType, command string) *SetEditorCommand {
	return &SetEditorCommand{
		store:   store,
		Type:    projectType,
		Command: command,
	}
}

// Validate checks the command input
func (c *SetEditorCommand) Validate() error {
	if err := application.ValidateRequired("projectType", c.Type); err != nil {
		return err
	}
	return application.ValidateTypeLabel("projectType", c.Type)
}

// Execute runs the set editor command
func (c *SetEditorCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	if err := c.store.SetEditor(c.Type, c.Command); err != nil {
		return "", fmt.Errorf("failed to set editor: %w", err)
	}
	if c.Command == "" {
		return fmt.Sprintf("Cleared launcher for %s", c.Type), nil
	}
	return fmt.Sprintf("Launcher for %s set to %q", c.Type, c.Command), nil
}
