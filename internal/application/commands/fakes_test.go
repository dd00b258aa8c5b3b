package commands

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"openproject/internal/application"
	"openproject/internal/domain"
)

// memoryStore is an in-memory ports.CacheStore
type memoryStore struct {
	cfg      domain.Config
	readErr  error
	writeErr error
	writes   int
}

func newMemoryStore(projects ...domain.Project) *memoryStore {
	cfg := domain.EmptyConfig()
	cfg.Cache = append(cfg.Cache, projects...)
	return &memoryStore{cfg: cfg}
}

func (s *memoryStore) Read() (domain.Config, error) {
	if s.readErr != nil {
		return domain.EmptyConfig(), s.readErr
	}
	return s.cfg, nil
}

func (s *memoryStore) Write(cfg domain.Config) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes++
	s.cfg = cfg
	return nil
}

func (s *memoryStore) MergeAndWrite(projects []domain.Project) ([]domain.Project, error) {
	merged := domain.MergeStats(s.cfg.Cache, projects)
	err := s.Write(domain.Config{
		Editor: domain.ExtendEditors(s.cfg.Editor, merged),
		Cache:  merged,
	})
	return merged, err
}

func (s *memoryStore) RecordLaunch(path, idePath string) (*domain.Project, error) {
	for i := range s.cfg.Cache {
		if s.cfg.Cache[i].Path == path {
			s.cfg.Cache[i].Hits++
			if idePath != "" {
				s.cfg.Cache[i].IDEPath = idePath
			}
			p := s.cfg.Cache[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("project %s: %w", path, application.ErrNotFound)
}

func (s *memoryStore) SetEditor(projectType, command string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.cfg.Editor[projectType] = command
	return nil
}

// stubWalker returns fixed projects per root and records the roots walked
type stubWalker struct {
	byRoot map[string][]domain.Project
	err    error
	walked []string
}

func (w *stubWalker) Walk(ctx context.Context, root string) ([]domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w.walked = append(w.walked, root)
	if w.err != nil {
		return nil, w.err
	}
	return w.byRoot[root], nil
}

// recordingLauncher records Open calls
type recordingLauncher struct {
	err    error
	opened []string // "path|command"
}

func (l *recordingLauncher) Open(path, command string) error {
	if l.err != nil {
		return l.err
	}
	l.opened = append(l.opened, path+"|"+command)
	return nil
}

func (l *recordingLauncher) Command(path, command string) (*exec.Cmd, error) {
	if command == "" {
		return nil, application.ErrNoLauncher
	}
	args := strings.Fields(command)
	return exec.Command(args[0], append(args[1:], path)...), nil
}

var errBoom = errors.New("boom")

func project(path, projectType string, hits int) domain.Project {
	p := domain.NewProject(path, projectType)
	p.Hits = hits
	return p
}

func names(projects []domain.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Name
	}
	return out
}
