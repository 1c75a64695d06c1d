package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"i"},
	Short:   "Initialize configuration (fetch workspaces, projects, clients)",
	Long: `Fetch clients and projects from Toggl and write the initial project
configuration. Inactive and private projects are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		fmt.Println("Fetching user data (workspaces, projects, clients)...")
		count, err := appInstance.Tracker.Init(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}

		fmt.Printf("✓ Setup complete: %d projects saved to %s\n", count, appInstance.Store.Path())
		return nil
	},
}
