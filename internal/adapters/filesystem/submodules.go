package filesystem

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	format "github.com/go-git/go-git/v5/plumbing/format/config"

	"openproject/internal/domain"
)

var pathLine = regexp.MustCompile(`^\s*path\s*=\s*(\S+)\s*$`)

// ReadSubmodules returns the submodule directories declared in a
// .gitmodules file, in file order. Each path is resolved against the
// directory holding the file.
//
// The file is decoded as git config first. When that fails or yields no
// paths, every `path = <value>` line is taken instead, so a stray header
// or escape elsewhere in the file does not hide the submodules.
func ReadSubmodules(gitmodulesPath string) ([]domain.ChildInfo, error) {
	data, err := os.ReadFile(gitmodulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open submodules: %w", err)
	}

	paths := decodeSubmodulePaths(data)
	if len(paths) == 0 {
		paths = scanSubmodulePaths(data)
	}

	base := filepath.Dir(gitmodulesPath)
	subs := make([]domain.ChildInfo, 0, len(paths))
	for _, path := range paths {
		subs = append(subs, domain.ChildInfo{
			Name:  path,
			Path:  filepath.Join(base, path),
			IsDir: true,
		})
	}
	return subs, nil
}

// decodeSubmodulePaths returns nil when the file is not valid git config
func decodeSubmodulePaths(data []byte) []string {
	cfg := format.New()
	if err := format.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		return nil
	}

	var paths []string
	for _, sub := range cfg.Section("submodule").Subsections {
		if path := sub.Option("path"); path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}

func scanSubmodulePaths(data []byte) []string {
	var paths []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if m := pathLine.FindStringSubmatch(scanner.Text()); m != nil {
			paths = append(paths, m[1])
		}
	}
	return paths
}
