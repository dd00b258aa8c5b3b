package ports

import "openproject/internal/domain"

// CacheStore persists the last full scan and the launcher map
type CacheStore interface {
	// Read returns the cached document. A missing document is initialized
	// on disk; an unreadable one is reported as empty without rewriting it.
	Read() (domain.Config, error)

	// Write replaces the whole document
	Write(cfg domain.Config) error

	// MergeAndWrite carries usage stats from the previous cache into
	// projects, extends the launcher map and persists the result.
	MergeAndWrite(projects []domain.Project) ([]domain.Project, error)

	// RecordLaunch increments the hit counter of the cached project at path
	// and remembers idePath when it is non-empty.
	RecordLaunch(path, idePath string) (*domain.Project, error)

	// SetEditor sets the launcher command for a project type
	SetEditor(projectType, command string) error
}
