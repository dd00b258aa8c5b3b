package cmd

import (
	"fmt"

	"github.com/cli/browser"
	"github.com/spf13/cobra"

	"openproject/internal/adapters/gitrepo"
)

var remoteOpen bool

var remoteCmd = &cobra.Command{
	Use:   "remote <keyword>",
	Short: "Print the repository page of the best matching project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := findProject(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		url, err := gitrepo.NewResolver().RemoteURL(project.Path)
		if err != nil {
			return err
		}
		fmt.Println(url)

		if remoteOpen {
			return browser.OpenURL(url)
		}
		return nil
	},
}

func init() {
	remoteCmd.Flags().BoolVarP(&remoteOpen, "open", "o", false, "open the page in the browser")
	rootCmd.AddCommand(remoteCmd)
}
