package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"openproject/internal/application/commands"
)

var editorCmd = &cobra.Command{
	Use:   "editor",
	Short: "Manage the launcher used for each project type",
}

var editorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List launchers by project type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := commands.NewListEditorsCommand(store).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No project types cached yet; run a search first")
			return nil
		}
		for _, e := range entries {
			command := e.Command
			if command == "" {
				command = "(default)"
			}
			fmt.Printf("%-18s %s\n", e.Type, command)
		}
		return nil
	},
}

var editorSetCmd = &cobra.Command{
	Use:   "set <type> [command...]",
	Short: "Set the launcher for a project type",
	Long: `Set the launcher command for a project type. Without a command the
type falls back to $VISUAL, $EDITOR or the system opener.

Examples:
  openproject-cli editor set rust zed
  openproject-cli editor set react_ts code -n
  openproject-cli editor set dart`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := commands.NewSetEditorCommand(store, args[0], strings.Join(args[1:], " ")).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

func init() {
	editorCmd.AddCommand(editorListCmd)
	editorCmd.AddCommand(editorSetCmd)
	rootCmd.AddCommand(editorCmd)
}
