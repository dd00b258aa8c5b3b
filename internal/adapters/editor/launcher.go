package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/cli/browser"

	"openproject/internal/application"
	"openproject/internal/ports"
)

// Launcher implements ports.Launcher
type Launcher struct {
	getenv   func(string) string
	openFile func(string) error
}

// Ensure Launcher implements ports.Launcher
var _ ports.Launcher = (*Launcher)(nil)

// NewLauncher creates a launcher reading $VISUAL and $EDITOR from the
// environment and falling back to the platform opener
func NewLauncher() *Launcher {
	return &Launcher{
		getenv:   os.Getenv,
		openFile: browser.OpenFile,
	}
}

// Open opens path with command. Without a command it tries the user's
// editor, then the platform default handler for directories.
func (l *Launcher) Open(path, command string) error {
	cmd, err := l.Command(path, command)
	if errors.Is(err, application.ErrNoLauncher) {
		return l.openFile(path)
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening path.
// This is useful for integrating with bubbletea's ExecProcess
func (l *Launcher) Command(path, command string) (*exec.Cmd, error) {
	if command == "" {
		command = l.findEditor()
	}
	args := strings.Fields(command)
	if len(args) == 0 {
		return nil, application.ErrNoLauncher
	}

	bin, err := exec.LookPath(args[0])
	if err != nil {
		return nil, fmt.Errorf("launcher %q not found: %w", args[0], err)
	}

	cmd := exec.Command(bin, append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns $VISUAL, then $EDITOR
func (l *Launcher) findEditor() string {
	if visual := l.getenv("VISUAL"); visual != "" {
		return visual
	}
	return l.getenv("EDITOR")
}
