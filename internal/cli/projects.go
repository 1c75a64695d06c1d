package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andy/togglcli/internal/tui"
)

var projectsCmd = &cobra.Command{
	Use:     "projects",
	Aliases: []string{"p"},
	Short:   "List projects and manage aliases/defaults",
	Long: `Fetch fresh projects, merge your locally-set aliases and default
project, and open the interactive menu for editing them. Changes are written
only on "save and quit"; Esc exits without saving.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		fmt.Println("Fetching user data (workspaces, projects, clients)...")
		cfg, err := appInstance.Tracker.RefreshProjects(ctx)
		if err != nil {
			return fmt.Errorf("failed to refresh projects: %w", err)
		}

		saved, err := tui.Run(cfg, appInstance.Config.Projects.FallbackClient, appInstance.Store.Save)
		if err != nil {
			return fmt.Errorf("project menu failed: %w", err)
		}

		if saved {
			fmt.Println("✓ Configuration saved.")
		} else {
			fmt.Println("Quit without saving.")
		}
		return nil
	},
}
