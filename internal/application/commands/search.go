package commands

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"openproject/internal/application"
	"openproject/internal/domain"
	"openproject/internal/ports"
)

// Searcher answers keyword queries from the cache, falling back to a full
// scan of the workspace roots. Calls are serialized: one search or scan
// runs at a time per Searcher.
type Searcher struct {
	mu     sync.Mutex
	store  ports.CacheStore
	walker ports.ProjectWalker
	roots  []string
	logger *log.Logger
}

// NewSearcher creates a Searcher over the given workspace roots
func NewSearcher(store ports.CacheStore, walker ports.ProjectWalker, roots []string, logger *log.Logger) *Searcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Searcher{
		store:  store,
		walker: walker,
		roots:  roots,
		logger: logger,
	}
}

// Roots returns the workspace roots scanned by the Searcher
func (s *Searcher) Roots() []string {
	return s.roots
}

// Search ranks the cached projects; when nothing in the cache matches it
// scans every root and ranks the fresh result instead.
func (s *Searcher) Search(ctx context.Context, keyword string, mode MatchMode) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.readCache()
	results, err := Rank(cfg.Cache, keyword, mode)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		return results, nil
	}

	fresh, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(fresh, keyword, mode)
}

// Rescan ignores the cache, scans every root and ranks the fresh result
func (s *Searcher) Rescan(ctx context.Context, keyword string, mode MatchMode) ([]domain.Project, error) {
	// Reject a bad pattern before paying for a scan.
	if _, err := Rank(nil, keyword, mode); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fresh, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(fresh, keyword, mode)
}

// Cached returns the cached projects without scanning
func (s *Searcher) Cached() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readCache().Cache
}

func (s *Searcher) readCache() domain.Config {
	cfg, err := s.store.Read()
	if err != nil {
		s.logger.Warn("cache read degraded", "error", err)
	}
	return cfg
}

// scan walks the roots one after another and persists the merged result.
// A cancelled scan returns the context error and writes nothing.
func (s *Searcher) scan(ctx context.Context) ([]domain.Project, error) {
	if len(s.roots) == 0 {
		return nil, application.ErrNoWorkspace
	}

	start := time.Now()
	var fresh []domain.Project
	for _, root := range s.roots {
		found, err := s.walker.Walk(ctx, root)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", root, err)
		}
		fresh = append(fresh, found...)
	}

	merged, err := s.store.MergeAndWrite(fresh)
	if err != nil {
		s.logger.Error("failed to persist scan", "error", err)
	}

	s.logger.Info("scan finished", "roots", len(s.roots), "projects", len(merged), "took", time.Since(start).Round(time.Millisecond))
	return merged, nil
}

// SearchCommand runs one keyword query through a Searcher
type SearchCommand struct {
	searcher *Searcher
	Keyword  string
	Mode     MatchMode
	Fresh    bool // skip the cache and scan
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(searcher *Searcher, keyword string, mode MatchMode) *SearchCommand {
	return &SearchCommand{
		searcher: searcher,
		Keyword:  keyword,
		Mode:     mode,
	}
}

// NewRescanCommand creates a SearchCommand that ignores the cache
func NewRescanCommand(searcher *Searcher, keyword string, mode MatchMode) *SearchCommand {
	cmd := NewSearchCommand(searcher, keyword, mode)
	cmd.Fresh = true
	return cmd
}

// Execute runs the search and returns ranked projects
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.Project, error) {
	if c.Fresh {
		return c.searcher.Rescan(ctx, c.Keyword, c.Mode)
	}
	return c.searcher.Search(ctx, c.Keyword, c.Mode)
}
