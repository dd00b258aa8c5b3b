package ports

import (
	"context"

	"openproject/internal/domain"
)

// ProjectWalker discovers and classifies projects below a root directory
type ProjectWalker interface {
	// Walk returns the projects found under root in depth-first order.
	// Unreadable branches are skipped; only context cancellation is an error.
	Walk(ctx context.Context, root string) ([]domain.Project, error)
}
