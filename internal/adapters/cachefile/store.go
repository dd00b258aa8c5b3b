package cachefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"openproject/internal/application"
	"openproject/internal/domain"
	"openproject/internal/ports"
)

// Store implements ports.CacheStore on a single JSON document
type Store struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
}

// Ensure Store implements CacheStore
var _ ports.CacheStore = (*Store)(nil)

// NewStore creates a store backed by the document at path
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{path: path, logger: logger}
}

// Path returns the location of the cache document
func (s *Store) Path() string {
	return s.path
}

// Read returns the cached document. A missing document is created with
// empty contents. A document that cannot be decoded is reported as empty
// and left on disk untouched until the next write.
func (s *Store) Read() (domain.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *Store) read() (domain.Config, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := domain.EmptyConfig()
		if err := s.write(cfg); err != nil {
			return cfg, err
		}
		s.logger.Debug("initialized cache", "path", s.path)
		return cfg, nil
	}
	if err != nil {
		return domain.EmptyConfig(), fmt.Errorf("failed to read cache: %w", err)
	}

	var cfg domain.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.logger.Warn("ignoring unreadable cache", "path", s.path, "error", err)
		return domain.EmptyConfig(), nil
	}
	if cfg.Editor == nil {
		cfg.Editor = map[string]string{}
	}
	if cfg.Cache == nil {
		cfg.Cache = []domain.Project{}
	}
	return cfg, nil
}

// Write replaces the whole document
func (s *Store) Write(cfg domain.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(cfg)
}

// MergeAndWrite carries hits and launcher paths from the current document
// into projects, extends the launcher map with their types and persists
// the result. The merged list is returned even when persisting fails.
func (s *Store) MergeAndWrite(projects []domain.Project) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, err := s.read()
	if err != nil {
		s.logger.Warn("merging without previous cache", "error", err)
	}

	merged := domain.MergeStats(previous.Cache, projects)
	cfg := domain.Config{
		Editor: domain.ExtendEditors(previous.Editor, merged),
		Cache:  merged,
	}
	if err := s.write(cfg); err != nil {
		return merged, err
	}
	return merged, nil
}

// RecordLaunch increments the hit counter of the cached project at path
// and remembers idePath when it is non-empty
func (s *Store) RecordLaunch(path, idePath string) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil {
		return nil, err
	}

	for i := range cfg.Cache {
		if cfg.Cache[i].Path != path {
			continue
		}
		cfg.Cache[i].Hits++
		if idePath != "" {
			cfg.Cache[i].IDEPath = idePath
		}
		if err := s.write(cfg); err != nil {
			return nil, err
		}
		project := cfg.Cache[i]
		return &project, nil
	}
	return nil, fmt.Errorf("project %s: %w", path, application.ErrNotFound)
}

// SetEditor sets the launcher command for a project type. An empty command
// keeps the entry so the type stays listed.
func (s *Store) SetEditor(projectType, command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil {
		return err
	}
	cfg.Editor[projectType] = command
	return s.write(cfg)
}

func (s *Store) write(cfg domain.Config) error {
	if cfg.Editor == nil {
		cfg.Editor = map[string]string{}
	}
	if cfg.Cache == nil {
		cfg.Cache = []domain.Project{}
	}

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace cache: %w", err)
	}
	return nil
}
