package ports

import "os/exec"

// Launcher opens a project in an external tool
type Launcher interface {
	// Open runs command for path, or the platform default when command is empty
	Open(path, command string) error

	// Command returns an exec.Cmd for opening path with command.
	// This is useful for integrating with bubbletea's ExecProcess
	Command(path, command string) (*exec.Cmd, error)
}

// RemoteResolver finds the web URL of a repository's origin remote
type RemoteResolver interface {
	RemoteURL(path string) (string, error)
}
