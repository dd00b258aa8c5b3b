package domain

import (
	"crypto/md5"
	"encoding/hex"
	"path/filepath"
)

// ChildInfo is one directory entry seen while walking a directory
type ChildInfo struct {
	Name  string
	Path  string // Absolute path of the entry
	IsDir bool
}

// Project is a discovered repository as persisted in the cache and
// returned to callers. Hits and IDEPath are the only fields carried
// across scans; everything else is recomputed.
type Project struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Path    string `json:"path"`
	Type    string `json:"type"`
	Hits    int    `json:"hits"`
	IDEPath string `json:"idePath"`
}

// Config is the persisted cache document
type Config struct {
	Editor map[string]string `json:"editor"` // project type -> launcher command
	Cache  []Project         `json:"cache"`
}

// EmptyConfig returns the document used when nothing is cached yet
func EmptyConfig() Config {
	return Config{
		Editor: map[string]string{},
		Cache:  []Project{},
	}
}

// ProjectID returns the stable identity of a project path
func ProjectID(path string) string {
	sum := md5.Sum([]byte(path))
	return hex.EncodeToString(sum[:])
}

// NewProject builds a freshly scanned project with zeroed usage stats
func NewProject(path, projectType string) Project {
	return Project{
		ID:   ProjectID(path),
		Name: filepath.Base(path),
		Path: path,
		Type: projectType,
	}
}

// ExtendEditors adds an empty launcher for every project type that has
// no entry yet. Existing entries are never removed or overwritten.
func ExtendEditors(editor map[string]string, projects []Project) map[string]string {
	out := make(map[string]string, len(editor))
	for k, v := range editor {
		out[k] = v
	}
	for _, p := range projects {
		if _, ok := out[p.Type]; !ok {
			out[p.Type] = ""
		}
	}
	return out
}

// MergeStats carries usage stats from the previous cache into a fresh
// scan. Only previous entries with hits or a launcher path are considered.
// Hits take the larger value; IDEPath is taken from the previous entry.
func MergeStats(previous, fresh []Project) []Project {
	carried := make(map[string]Project)
	for _, p := range previous {
		if p.Hits > 0 || p.IDEPath != "" {
			carried[p.Path] = p
		}
	}

	merged := make([]Project, len(fresh))
	for i, p := range fresh {
		old := carried[p.Path]
		p.Hits = max(p.Hits, old.Hits)
		p.IDEPath = old.IDEPath
		merged[i] = p
	}
	return merged
}
