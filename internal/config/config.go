package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	// AppName names the config and data directories
	AppName = "openproject"
	// EnvPrefix prefixes every environment override, e.g. OPENPROJECT_WORKSPACE
	EnvPrefix = "OPENPROJECT"
	// CacheFileName is the cache document inside the data directory
	CacheFileName = "config.json"
)

// Preferences are the user settings handed to the core components
type Preferences struct {
	Workspace []string // Absolute or ~-expanded root directories, scanned in order
	IDEName   string   // Display name of the preferred editor
	CachePath string
	MatchMode string
	Exclude   []string // gitignore-style patterns skipped while walking
	MaxDepth  int      // 0 means unbounded
	LogLevel  string
	Debug     bool
}

// Dir returns $XDG_CONFIG_HOME/openproject, defaulting to ~/.config/openproject
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

// DefaultCachePath returns $XDG_DATA_HOME/openproject/config.json,
// defaulting to ~/.local/share/openproject/config.json
func DefaultCachePath() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, AppName, CacheFileName)
}

// New returns a viper instance with defaults, search paths and environment
// overrides set. An empty configDir selects Dir().
func New(configDir string) *viper.Viper {
	v := viper.New()

	v.SetDefault("workspace", "")
	v.SetDefault("ide_name", "")
	v.SetDefault("cache_path", DefaultCachePath())
	v.SetDefault("match_mode", "literal")
	v.SetDefault("exclude", []string{})
	v.SetDefault("max_depth", 0)
	v.SetDefault("log_level", "warn")
	v.SetDefault("debug", false)

	if configDir == "" {
		configDir, _ = Dir()
	}
	v.SetConfigName("config")
	v.SetConfigType("toml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file, if any, and resolves Preferences from v
func Load(v *viper.Viper) (Preferences, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Preferences{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	home, _ := os.UserHomeDir()

	prefs := Preferences{
		Workspace: ParseWorkspace(stringValue(v.Get("workspace")), home),
		IDEName:   v.GetString("ide_name"),
		CachePath: ExpandHome(v.GetString("cache_path"), home),
		MatchMode: v.GetString("match_mode"),
		Exclude:   v.GetStringSlice("exclude"),
		MaxDepth:  v.GetInt("max_depth"),
		LogLevel:  v.GetString("log_level"),
		Debug:     v.GetBool("debug"),
	}
	if prefs.MaxDepth < 0 {
		return Preferences{}, fmt.Errorf("max_depth must not be negative, got %d", prefs.MaxDepth)
	}
	return prefs, nil
}

// ParseWorkspace splits a workspace list on ASCII or full-width commas,
// trims blanks, drops empty entries and expands a leading ~ on each entry
func ParseWorkspace(raw, home string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '，'
	})

	var roots []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		roots = append(roots, ExpandHome(f, home))
	}
	return roots
}

// ExpandHome replaces a leading ~ with home
func ExpandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// NewLogger builds the logger for the given preferences. Debug wins over
// LogLevel; an unknown level falls back to warn.
func NewLogger(w io.Writer, prefs Preferences) *log.Logger {
	level, err := log.ParseLevel(prefs.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	if prefs.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          AppName,
	})
}

// stringValue accepts the workspace either as a single string or as a
// TOML array and joins the latter into the comma form
func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		return strings.Join(t, ",")
	case []any:
		parts := make([]string, 0, len(t))
		for _, p := range t {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}
