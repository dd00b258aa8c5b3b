package domain

import (
	"testing"
)

func children(names ...string) []ChildInfo {
	out := make([]ChildInfo, len(names))
	for i, n := range names {
		out[i] = ChildInfo{Name: n, Path: "/p/" + n}
	}
	return out
}

func deps(list ...string) DependencyLoader {
	return func(string) []string { return list }
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		children []ChildInfo
		deps     []string
		want     string
	}{
		{name: "cargo manifest", children: children("Cargo.toml", "src"), want: TypeRust},
		{name: "pubspec", children: children("pubspec.yaml", "lib"), want: TypeDart},
		{name: "literal xcodeproj entry", children: children(".*.xcodeproj"), want: TypeAppleIDE},
		{name: "real xcode bundle is not matched", children: children("App.xcodeproj"), want: TypeUnknown},
		{name: "android needs app and gradle", children: children("app", "gradle", "build.gradle"), want: TypeAndroid},
		{name: "app without gradle", children: children("app"), want: TypeUnknown},
		{name: "nuxt", children: children("package.json", "nuxt.config.js"), want: TypeNuxt},
		{name: "vue", children: children("package.json", "vue.config.js"), want: TypeVue},
		{name: "editor extension", children: children("package.json", ".vscodeignore"), want: TypeEditorExtension},
		{name: "react with tsconfig", children: children("package.json", "tsconfig.json"), deps: []string{"react"}, want: TypeReactTS},
		{name: "react", children: children("package.json"), deps: []string{"react-dom", "react"}, want: TypeReact},
		{name: "hexo", children: children("package.json"), deps: []string{"hexo"}, want: TypeHexo},
		{name: "typescript", children: children("package.json", "tsconfig.json"), deps: []string{"lodash"}, want: TypeTypeScript},
		{name: "plain javascript", children: children("package.json"), want: TypeJavaScript},
		{name: "nothing recognised", children: children("README.md", "docs"), want: TypeUnknown},
		{name: "no children", children: nil, want: TypeUnknown},
		{name: "case-insensitive names", children: children("PACKAGE.JSON", "TSConfig.json"), want: TypeTypeScript},
		{name: "rust wins over package manifest", children: children("package.json", "cargo.toml"), deps: []string{"react"}, want: TypeRust},
		{name: "nuxt wins over react dependency", children: children("package.json", "nuxt.config.js"), deps: []string{"react"}, want: TypeNuxt},
		{name: "tsconfig without manifest", children: children("tsconfig.json"), want: TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.children, deps(tt.deps...)); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClassify_LoadsDependenciesLazily(t *testing.T) {
	called := false
	loader := func(string) []string {
		called = true
		return []string{"react"}
	}

	if got := Classify(children("Cargo.toml", "package.json"), loader); got != TypeRust {
		t.Fatalf("expected %s, got %s", TypeRust, got)
	}
	if called {
		t.Error("expected dependency loader not to be called")
	}
}

func TestClassify_LoaderReceivesManifestPath(t *testing.T) {
	var got string
	loader := func(path string) []string {
		got = path
		return nil
	}

	Classify([]ChildInfo{{Name: "Package.json", Path: "/work/web/Package.json"}}, loader)
	if got != "/work/web/Package.json" {
		t.Errorf("expected manifest path /work/web/Package.json, got %q", got)
	}
}

func TestClassify_NilLoader(t *testing.T) {
	if got := Classify(children("package.json"), nil); got != TypeJavaScript {
		t.Errorf("expected %s, got %s", TypeJavaScript, got)
	}
}
