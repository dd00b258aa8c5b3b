package filesystem

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	gitignore "github.com/monochromegane/go-gitignore"

	"openproject/internal/domain"
	"openproject/internal/ports"
)

const (
	gitDirName     = ".git"
	gitmodulesName = ".gitmodules"
)

// Walker implements ports.ProjectWalker on the local filesystem
type Walker struct {
	logger   *log.Logger
	exclude  []string
	maxDepth int
}

// Ensure Walker implements ProjectWalker
var _ ports.ProjectWalker = (*Walker)(nil)

// WalkerOption configures the Walker
type WalkerOption func(*Walker)

// WithLogger sets the logger used for skipped branches
func WithLogger(logger *log.Logger) WalkerOption {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithExclude skips directories matching gitignore-style patterns,
// evaluated relative to each walked root
func WithExclude(patterns []string) WalkerOption {
	return func(w *Walker) {
		w.exclude = patterns
	}
}

// WithMaxDepth stops descending below depth levels under the root.
// Zero means unbounded.
func WithMaxDepth(depth int) WalkerOption {
	return func(w *Walker) {
		w.maxDepth = depth
	}
}

// NewWalker creates a new filesystem walker
func NewWalker(opts ...WalkerOption) *Walker {
	w := &Walker{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type pendingDir struct {
	path  string
	depth int
}

// Walk finds git projects under root depth-first. A directory holding a
// .git entry is emitted as a project and only its submodules are entered;
// any other directory has all of its subdirectories entered.
func (w *Walker) Walk(ctx context.Context, root string) ([]domain.Project, error) {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	excluded := w.excludeMatcher(root)

	var projects []domain.Project
	stack := []pendingDir{{path: root}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := w.readChildren(dir.path)

		var next []domain.ChildInfo
		if hasEntry(children, gitDirName) {
			projects = append(projects, domain.NewProject(dir.path, domain.Classify(children, w.loadDependencies)))
			if hasEntry(children, gitmodulesName) {
				next = w.readSubmodules(filepath.Join(dir.path, gitmodulesName))
			}
		} else {
			for _, c := range children {
				if c.IsDir {
					next = append(next, c)
				}
			}
		}

		if w.maxDepth > 0 && dir.depth >= w.maxDepth {
			continue
		}

		// Push in reverse so siblings are visited in listing order.
		for _, c := range slices.Backward(next) {
			if excluded != nil && excluded.Match(c.Path, true) {
				w.logger.Debug("excluded directory", "path", c.Path)
				continue
			}
			stack = append(stack, pendingDir{path: c.Path, depth: dir.depth + 1})
		}
	}

	return projects, nil
}

// readChildren lists the immediate entries of dir. Any failure yields no
// children so one broken branch never aborts the scan.
func (w *Walker) readChildren(dir string) []domain.ChildInfo {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Debug("skipping unreadable directory", "path", dir, "error", err)
		return nil
	}

	children := make([]domain.ChildInfo, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		children = append(children, domain.ChildInfo{
			Name:  entry.Name(),
			Path:  path,
			IsDir: isDir(entry, path),
		})
	}
	return children
}

func (w *Walker) readSubmodules(path string) []domain.ChildInfo {
	subs, err := ReadSubmodules(path)
	if err != nil {
		w.logger.Debug("ignoring submodules", "path", path, "error", err)
		return nil
	}
	return subs
}

func (w *Walker) loadDependencies(manifestPath string) []string {
	deps, err := ReadDependencies(manifestPath)
	if err != nil {
		w.logger.Debug("treating manifest as dependency-free", "path", manifestPath, "error", err)
		return nil
	}
	return deps
}

func (w *Walker) excludeMatcher(root string) gitignore.IgnoreMatcher {
	if len(w.exclude) == 0 {
		return nil
	}
	return gitignore.NewGitIgnoreFromReader(root, strings.NewReader(strings.Join(w.exclude, "\n")))
}

// isDir follows symlinks; a broken link counts as a file
func isDir(entry fs.DirEntry, path string) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func hasEntry(children []domain.ChildInfo, name string) bool {
	return slices.ContainsFunc(children, func(c domain.ChildInfo) bool {
		return c.Name == name
	})
}
