package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"openproject/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search projects by name",
	Long: `Search cached projects by name. When nothing cached matches, every
workspace root is scanned and the fresh result is searched instead.

Names starting with the keyword come first, then by launch count.

Examples:
  openproject-cli search api
  openproject-cli search --mode regexp '^web-'
  openproject-cli search`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := commands.NewSearchCommand(searcher, strings.Join(args, ""), mode).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printProjects(results)
		return nil
	},
}

var rescanCmd = &cobra.Command{
	Use:   "rescan [keyword]",
	Short: "Scan the workspace again, ignoring the cache",
	Long: `Scan every workspace root, refresh the cache and search the fresh
result. Launch counts and remembered launchers are kept.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := commands.NewRescanCommand(searcher, strings.Join(args, ""), mode).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printProjects(results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(rescanCmd)
}
