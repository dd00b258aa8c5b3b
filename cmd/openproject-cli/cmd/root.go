package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"openproject/internal/adapters/cachefile"
	"openproject/internal/adapters/filesystem"
	"openproject/internal/application"
	"openproject/internal/application/commands"
	"openproject/internal/config"
	"openproject/internal/domain"
)

var (
	v        = config.New("")
	prefs    config.Preferences
	logger   *log.Logger
	store    *cachefile.Store
	searcher *commands.Searcher
	mode     commands.MatchMode
)

var rootCmd = &cobra.Command{
	Use:   "openproject-cli",
	Short: "Find and open local git projects",
	Long: `openproject-cli finds the git repositories below your workspace roots,
remembers them in a cache and opens them in the launcher configured for
their project type.

Workspace roots come from config.toml in $XDG_CONFIG_HOME/openproject,
OPENPROJECT_WORKSPACE or --workspace, separated by commas.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		prefs, err = config.Load(v)
		if err != nil {
			return err
		}
		if mode, err = commands.ParseMatchMode(prefs.MatchMode); err != nil {
			return err
		}

		logger = config.NewLogger(os.Stderr, prefs)
		store = cachefile.NewStore(prefs.CachePath, logger)
		walker := filesystem.NewWalker(
			filesystem.WithLogger(logger),
			filesystem.WithExclude(prefs.Exclude),
			filesystem.WithMaxDepth(prefs.MaxDepth),
		)
		searcher = commands.NewSearcher(store, walker, prefs.Workspace, logger)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("workspace", "w", "", "comma-separated workspace roots")
	flags.String("cache-path", "", "path to the cache document")
	flags.StringP("mode", "m", "", "match mode: literal, regexp or fuzzy")
	flags.StringSlice("exclude", nil, "gitignore-style patterns to skip while scanning")
	flags.Int("max-depth", 0, "maximum directory depth below each root (0 = unbounded)")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	bind(v, "workspace", "workspace")
	bind(v, "cache_path", "cache-path")
	bind(v, "match_mode", "mode")
	bind(v, "exclude", "exclude")
	bind(v, "max_depth", "max-depth")
	bind(v, "debug", "verbose")
}

func bind(v *viper.Viper, key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

// findProject returns the best match for query. An absolute path selects
// the cached project at that path.
func findProject(ctx context.Context, query string) (domain.Project, error) {
	if filepath.IsAbs(query) {
		for _, p := range searcher.Cached() {
			if p.Path == filepath.Clean(query) {
				return p, nil
			}
		}
		return domain.Project{}, fmt.Errorf("project %s: %w", query, application.ErrNotFound)
	}

	results, err := searcher.Search(ctx, query, mode)
	if err != nil {
		return domain.Project{}, err
	}
	if len(results) == 0 {
		return domain.Project{}, fmt.Errorf("no project matches %q: %w", query, application.ErrNotFound)
	}
	return results[0], nil
}

func homeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

func printProjects(projects []domain.Project) {
	if len(projects) == 0 {
		fmt.Println("No projects found")
		return
	}
	for _, p := range projects {
		fmt.Printf("%-30s %-16s %4d  %s\n", p.Name, "["+p.Type+"]", p.Hits, p.Path)
	}
}
