package domain

import "strings"

// Project type labels
const (
	TypeRust            = "rust"
	TypeDart            = "dart"
	TypeAppleIDE        = "apple-ide"
	TypeAndroid         = "android"
	TypeNuxt            = "nuxt"
	TypeVue             = "vue"
	TypeEditorExtension = "editor-extension"
	TypeReact           = "react"
	TypeReactTS         = "react_ts"
	TypeHexo            = "hexo"
	TypeTypeScript      = "typescript"
	TypeJavaScript      = "javascript"
	TypeUnknown         = "unknown"
)

// ManifestFile is the manifest consulted for JavaScript projects
const ManifestFile = "package.json"

// DependencyLoader returns the dependency names declared by the manifest at
// path. Implementations degrade to an empty list on read or parse failure.
type DependencyLoader func(manifestPath string) []string

// Classify returns the type label for a project given its immediate
// children. Rules are evaluated in priority order; the first match wins.
// loadDeps is only called when the dependency rules are reached.
func Classify(children []ChildInfo, loadDeps DependencyLoader) string {
	switch {
	case hasChildren(children, "cargo.toml"):
		return TypeRust
	case hasChildren(children, "pubspec.yaml"):
		return TypeDart
	case hasChildren(children, ".*.xcodeproj"):
		// Literal name, not a glob: real Xcode bundles are named Foo.xcodeproj.
		return TypeAppleIDE
	case hasChildren(children, "app", "gradle"):
		return TypeAndroid
	}

	manifest, ok := findChild(children, ManifestFile)
	if !ok {
		return TypeUnknown
	}

	switch {
	case hasChildren(children, "nuxt.config.js"):
		return TypeNuxt
	case hasChildren(children, "vue.config.js"):
		return TypeVue
	case hasChildren(children, ".vscodeignore"):
		return TypeEditorExtension
	}

	isTS := hasChildren(children, "tsconfig.json")
	var deps []string
	if loadDeps != nil {
		deps = loadDeps(manifest.Path)
	}

	switch {
	case containsFold(deps, "react"):
		if isTS {
			return TypeReactTS
		}
		return TypeReact
	case containsFold(deps, "hexo"):
		return TypeHexo
	case isTS:
		return TypeTypeScript
	default:
		return TypeJavaScript
	}
}

// hasChildren reports whether every name has a case-insensitive exact match
// among children
func hasChildren(children []ChildInfo, names ...string) bool {
	for _, name := range names {
		if _, ok := findChild(children, name); !ok {
			return false
		}
	}
	return true
}

func findChild(children []ChildInfo, name string) (ChildInfo, bool) {
	for _, c := range children {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return ChildInfo{}, false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
