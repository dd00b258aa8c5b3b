package commands

import (
	"context"
	"errors"
	"slices"
	"testing"

	"openproject/internal/application"
	"openproject/internal/domain"
)

func TestSearcher_CacheHitSkipsScan(t *testing.T) {
	store := newMemoryStore(project("/w/api", domain.TypeUnknown, 0))
	walker := &stubWalker{}
	s := NewSearcher(store, walker, []string{"/w"}, nil)

	got, err := s.Search(context.Background(), "api", MatchLiteral)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !slices.Equal(names(got), []string{"api"}) {
		t.Errorf("unexpected results %v", names(got))
	}
	if len(walker.walked) != 0 {
		t.Errorf("expected no scan, walked %v", walker.walked)
	}
	if store.writes != 0 {
		t.Errorf("expected no writes, got %d", store.writes)
	}
}

func TestSearcher_CacheMissScansAllRoots(t *testing.T) {
	old := project("/a/web", domain.TypeJavaScript, 4)
	store := newMemoryStore(old)
	walker := &stubWalker{byRoot: map[string][]domain.Project{
		"/a": {project("/a/web", domain.TypeTypeScript, 0)},
		"/b": {project("/b/web-admin", domain.TypeVue, 0), project("/b/cli", domain.TypeRust, 0)},
	}}
	s := NewSearcher(store, walker, []string{"/a", "/b"}, nil)

	got, err := s.Search(context.Background(), "admin", MatchLiteral)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if !slices.Equal(walker.walked, []string{"/a", "/b"}) {
		t.Errorf("expected roots walked in order, got %v", walker.walked)
	}
	if !slices.Equal(names(got), []string{"web-admin"}) {
		t.Errorf("unexpected results %v", names(got))
	}
	if store.writes != 1 {
		t.Fatalf("expected one write, got %d", store.writes)
	}
	if len(store.cfg.Cache) != 3 {
		t.Errorf("expected 3 cached projects, got %d", len(store.cfg.Cache))
	}
	if store.cfg.Cache[0].Hits != 4 || store.cfg.Cache[0].Type != domain.TypeTypeScript {
		t.Errorf("expected hits carried and type refreshed, got %+v", store.cfg.Cache[0])
	}
	for _, typ := range []string{domain.TypeTypeScript, domain.TypeVue, domain.TypeRust} {
		if _, ok := store.cfg.Editor[typ]; !ok {
			t.Errorf("expected editor entry for %s", typ)
		}
	}
}

func TestSearcher_ScanRanksMergedList(t *testing.T) {
	store := newMemoryStore(project("/w/zzz-used", domain.TypeUnknown, 7))
	walker := &stubWalker{byRoot: map[string][]domain.Project{
		"/w": {project("/w/tool", domain.TypeUnknown, 0), project("/w/toolbox", domain.TypeUnknown, 0)},
	}}
	store.cfg.Cache = append(store.cfg.Cache, project("/w/toolbox", domain.TypeUnknown, 3))
	s := NewSearcher(store, walker, []string{"/w"}, nil)

	got, err := s.Rescan(context.Background(), "tool", MatchLiteral)
	if err != nil {
		t.Fatalf("Rescan failed: %v", err)
	}
	if !slices.Equal(names(got), []string{"toolbox", "tool"}) {
		t.Errorf("expected merged hits to drive order, got %v", names(got))
	}
}

func TestSearcher_NoMatchAfterScan(t *testing.T) {
	store := newMemoryStore()
	walker := &stubWalker{byRoot: map[string][]domain.Project{"/w": {project("/w/app", domain.TypeUnknown, 0)}}}
	s := NewSearcher(store, walker, []string{"/w"}, nil)

	got, err := s.Search(context.Background(), "nothing", MatchLiteral)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no results, got %v", names(got))
	}
	if store.writes != 1 {
		t.Errorf("expected scan persisted, got %d writes", store.writes)
	}
}

func TestSearcher_NoWorkspace(t *testing.T) {
	s := NewSearcher(newMemoryStore(), &stubWalker{}, nil, nil)

	_, err := s.Search(context.Background(), "x", MatchLiteral)
	if !errors.Is(err, application.ErrNoWorkspace) {
		t.Errorf("expected ErrNoWorkspace, got %v", err)
	}
}

func TestSearcher_CancelledScanWritesNothing(t *testing.T) {
	store := newMemoryStore()
	walker := &stubWalker{byRoot: map[string][]domain.Project{"/w": {project("/w/app", domain.TypeUnknown, 0)}}}
	s := NewSearcher(store, walker, []string{"/w"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Search(ctx, "app", MatchLiteral)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if store.writes != 0 {
		t.Errorf("expected no writes, got %d", store.writes)
	}
}

func TestSearcher_WalkError(t *testing.T) {
	store := newMemoryStore()
	s := NewSearcher(store, &stubWalker{err: errBoom}, []string{"/w"}, nil)

	_, err := s.Rescan(context.Background(), "", MatchLiteral)
	if !errors.Is(err, errBoom) {
		t.Errorf("expected walk error, got %v", err)
	}
	if store.writes != 0 {
		t.Errorf("expected no writes, got %d", store.writes)
	}
}

func TestSearcher_WriteFailureStillReturnsResults(t *testing.T) {
	store := newMemoryStore()
	store.writeErr = errBoom
	walker := &stubWalker{byRoot: map[string][]domain.Project{"/w": {project("/w/app", domain.TypeUnknown, 0)}}}
	s := NewSearcher(store, walker, []string{"/w"}, nil)

	got, err := s.Search(context.Background(), "app", MatchLiteral)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !slices.Equal(names(got), []string{"app"}) {
		t.Errorf("unexpected results %v", names(got))
	}
}

func TestSearcher_DegradedCacheReadFallsBackToScan(t *testing.T) {
	store := newMemoryStore(project("/w/app", domain.TypeUnknown, 0))
	store.readErr = errBoom
	walker := &stubWalker{byRoot: map[string][]domain.Project{"/w": {project("/w/app", domain.TypeUnknown, 0)}}}
	s := NewSearcher(store, walker, []string{"/w"}, nil)

	if _, err := s.Search(context.Background(), "app", MatchLiteral); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(walker.walked) != 1 {
		t.Errorf("expected a scan, walked %v", walker.walked)
	}
}

func TestSearcher_RescanRejectsBadPatternBeforeScanning(t *testing.T) {
	walker := &stubWalker{}
	s := NewSearcher(newMemoryStore(), walker, []string{"/w"}, nil)

	_, err := s.Rescan(context.Background(), "[", MatchRegexp)
	if !errors.Is(err, application.ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got %v", err)
	}
	if len(walker.walked) != 0 {
		t.Errorf("expected no scan, walked %v", walker.walked)
	}
}

func TestSearchCommand_Execute(t *testing.T) {
	store := newMemoryStore(project("/w/cached", domain.TypeUnknown, 0))
	walker := &stubWalker{byRoot: map[string][]domain.Project{"/w": {project("/w/fresh", domain.TypeUnknown, 0)}}}
	s := NewSearcher(store, walker, []string{"/w"}, nil)

	got, err := NewSearchCommand(s, "", MatchLiteral).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !slices.Equal(names(got), []string{"cached"}) {
		t.Errorf("expected cached results, got %v", names(got))
	}

	got, err = NewRescanCommand(s, "", MatchLiteral).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !slices.Equal(names(got), []string{"fresh"}) {
		t.Errorf("expected fresh results, got %v", names(got))
	}
}
