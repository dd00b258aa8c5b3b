package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"openproject/internal/adapters/cachefile"
	"openproject/internal/application"
	"openproject/internal/application/commands"
	"openproject/internal/domain"
)

type fixedWalker struct{ projects []domain.Project }

func (w fixedWalker) Walk(ctx context.Context, root string) ([]domain.Project, error) {
	return w.projects, ctx.Err()
}

type fixedRemote struct{ url string }

func (r fixedRemote) RemoteURL(path string) (string, error) {
	if r.url == "" {
		return "", application.ErrNotFound
	}
	return r.url, nil
}

func newFixture(t *testing.T) (*commands.Searcher, *cachefile.Store) {
	t.Helper()
	store := cachefile.NewStore(filepath.Join(t.TempDir(), "config.json"), nil)
	walker := fixedWalker{projects: []domain.Project{
		domain.NewProject("/w/api", domain.TypeRust),
		domain.NewProject("/w/web-api", domain.TypeReactTS),
		domain.NewProject("/w/docs", domain.TypeHexo),
	}}
	return commands.NewSearcher(store, walker, []string{"/w"}, nil), store
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(result.Content) == 0 {
		t.Fatal("expected content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text, result.IsError
}

func TestSearchProjects(t *testing.T) {
	searcher, _ := newFixture(t)

	text, isErr := call(t, searchHandler(searcher, false), map[string]any{"keyword": "api"})
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "api ") || !strings.HasPrefix(lines[1], "web-api ") {
		t.Errorf("unexpected results:\n%s", text)
	}
}

func TestSearchProjects_Errors(t *testing.T) {
	searcher, _ := newFixture(t)

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{name: "unknown mode", args: map[string]any{"keyword": "a", "mode": "glob"}, want: "match mode"},
		{name: "bad pattern", args: map[string]any{"keyword": "(", "mode": "regexp"}, want: "invalid pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := call(t, searchHandler(searcher, false), tt.args)
			if !isErr || !strings.Contains(text, tt.want) {
				t.Errorf("expected tool error containing %q, got %q (error=%v)", tt.want, text, isErr)
			}
		})
	}
}

func TestSearchProjects_NoWorkspace(t *testing.T) {
	store := cachefile.NewStore(filepath.Join(t.TempDir(), "config.json"), nil)
	searcher := commands.NewSearcher(store, fixedWalker{}, nil, nil)

	text, isErr := call(t, searchHandler(searcher, false), map[string]any{"keyword": "x"})
	if !isErr || !strings.Contains(text, "no workspace") {
		t.Errorf("expected workspace error, got %q", text)
	}
}

func TestRecordLaunchAndRescan(t *testing.T) {
	searcher, store := newFixture(t)
	call(t, searchHandler(searcher, true), map[string]any{})

	text, isErr := call(t, recordLaunchHandler(store), map[string]any{"path": "/w/web-api", "ide_path": "code"})
	if isErr || !strings.Contains(text, "1 hits") {
		t.Fatalf("unexpected record result %q", text)
	}

	text, _ = call(t, searchHandler(searcher, true), map[string]any{"keyword": "api"})
	if !strings.Contains(text, "web-api  react_ts  /w/web-api  hits=1") {
		t.Errorf("expected hits preserved across rescan:\n%s", text)
	}
}

func TestRecordLaunch_Errors(t *testing.T) {
	_, store := newFixture(t)

	if text, isErr := call(t, recordLaunchHandler(store), map[string]any{}); !isErr || !strings.Contains(text, "path is required") {
		t.Errorf("expected validation error, got %q", text)
	}
	if text, isErr := call(t, recordLaunchHandler(store), map[string]any{"path": "/nowhere"}); !isErr || !strings.Contains(text, "not found") {
		t.Errorf("expected not found, got %q", text)
	}
}

func TestEditors(t *testing.T) {
	searcher, store := newFixture(t)
	call(t, searchHandler(searcher, true), map[string]any{})

	if text, isErr := call(t, setEditorHandler(store), map[string]any{"type": "rust", "command": "zed"}); isErr {
		t.Fatalf("set_editor failed: %s", text)
	}

	text, _ := call(t, listEditorsHandler(store), nil)
	for _, want := range []string{"hexo  (default)", "react_ts  (default)", "rust  zed"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in:\n%s", want, text)
		}
	}
}

func TestProjectRemote(t *testing.T) {
	text, isErr := call(t, remoteHandler(fixedRemote{url: "https://github.com/o/api"}), map[string]any{"path": "/w/api"})
	if isErr || text != "https://github.com/o/api" {
		t.Errorf("unexpected result %q", text)
	}

	if _, isErr := call(t, remoteHandler(fixedRemote{}), map[string]any{"path": "/w/api"}); !isErr {
		t.Error("expected tool error without remote")
	}
}
