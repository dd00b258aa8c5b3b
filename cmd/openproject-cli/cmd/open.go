package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"openproject/internal/adapters/editor"
	"openproject/internal/application/commands"
	"openproject/internal/config"
)

var openWith string

var openCmd = &cobra.Command{
	Use:   "open <keyword|path>",
	Short: "Open the best matching project",
	Long: `Open the best matching project and count the launch.

The launcher is chosen in this order: --with, the launcher remembered for
the project, the launcher configured for its type, $VISUAL, $EDITOR, then
the system opener. A launcher given with --with is remembered.

Examples:
  openproject-cli open api
  openproject-cli open api --with "code -n"
  openproject-cli open ~/code/api`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := findProject(cmd.Context(), config.ExpandHome(args[0], homeDir()))
		if err != nil {
			return err
		}

		result, err := commands.NewOpenCommand(store, editor.NewLauncher(), project.Path, openWith).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy <keyword>",
	Short: "Copy the path of the best matching project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := findProject(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := clipboard.WriteAll(project.Path); err != nil {
			return fmt.Errorf("failed to copy path: %w", err)
		}
		fmt.Printf("Copied %s\n", project.Path)
		return nil
	},
}

func init() {
	openCmd.Flags().StringVar(&openWith, "with", "", "launcher command to use and remember")
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(copyCmd)
}
