package filesystem

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ReadDependencies returns the union of the "dependencies" and
// "devDependencies" keys of a package manifest, without duplicates
func ReadDependencies(manifestPath string) ([]string, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("malformed manifest: %s", manifestPath)
	}

	seen := make(map[string]bool)
	var deps []string
	for _, field := range []string{"dependencies", "devDependencies"} {
		section := gjson.GetBytes(data, field)
		if !section.IsObject() {
			continue
		}
		section.ForEach(func(key, _ gjson.Result) bool {
			name := key.String()
			if !seen[name] {
				seen[name] = true
				deps = append(deps, name)
			}
			return true
		})
	}
	return deps, nil
}
