package application

import "openproject/internal/domain"

// Re-export domain types for use by adapters
type (
	Project   = domain.Project
	Config    = domain.Config
	ChildInfo = domain.ChildInfo
)

// ProjectID returns the stable identity of a project path
func ProjectID(path string) string {
	return domain.ProjectID(path)
}
