package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = errors.New("not found")
	ErrNoWorkspace    = errors.New("no workspace configured")
	ErrInvalidPattern = errors.New("invalid search pattern")
	ErrNoLauncher     = errors.New("no launcher available")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PatternError reports a keyword that could not be compiled in regexp mode
type PatternError struct {
	Keyword string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Keyword, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

// LaunchError represents a failure to open a project
type LaunchError struct {
	Path    string
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot open %s with %q: %v", e.Path, e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
