package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"openproject/internal/adapters/editor"
	"openproject/internal/application/commands"
)

var pickOpen bool

var pickCmd = &cobra.Command{
	Use:   "pick [keyword]",
	Short: "Choose a project interactively",
	Long: `Narrow the ranked project list with an inline fuzzy finder and print
the chosen path, or open it with --open.

Examples:
  cd "$(openproject-cli pick)"
  openproject-cli pick api --open`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := commands.NewSearchCommand(searcher, strings.Join(args, ""), mode).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			return fmt.Errorf("no projects to choose from")
		}

		idx, err := fuzzyfinder.Find(
			projects,
			func(i int) string {
				return projects[i].Name
			},
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				p := projects[i]
				return fmt.Sprintf("Path: %s\nType: %s\nHits: %d\nLauncher: %s", p.Path, p.Type, p.Hits, p.IDEPath)
			}),
		)
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("fuzzy finder error: %w", err)
		}

		chosen := projects[idx]
		if !pickOpen {
			fmt.Println(chosen.Path)
			return nil
		}

		result, err := commands.NewOpenCommand(store, editor.NewLauncher(), chosen.Path, "").Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	pickCmd.Flags().BoolVar(&pickOpen, "open", false, "open the chosen project instead of printing its path")
	rootCmd.AddCommand(pickCmd)
}
