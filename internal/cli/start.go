package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	startProject    string
	startNoBillable bool
)

var startCmd = &cobra.Command{
	Use:     "start <description>",
	Aliases: []string{"s"},
	Short:   "Start a new time entry",
	Long: `Start a new time entry with the start time rounded down to the
previous 15-minute boundary. The project is resolved by alias (exact match)
or name (case-insensitive); without -p the configured default project is
used.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		description := args[0]

		result, err := appInstance.Tracker.Start(ctx, description, startProject, !startNoBillable)
		if err != nil {
			return fmt.Errorf("failed to start entry: %w", err)
		}

		if result.UsedDefault {
			fmt.Printf("Using default project '%s'\n", result.Project.Name)
		}
		fmt.Printf("✓ Started '%s' for project '%s'\n", description, result.Project.Name)
		fmt.Printf("  Start: %s\n", result.StartedAt.Format("2006-01-02 15:04 MST"))
		fmt.Printf("  ID: %d\n", result.Entry.ID)
		return nil
	},
}

func init() {
	startCmd.Flags().StringVarP(&startProject, "project", "p", "",
		"project alias or name (uses the default project if not specified)")
	startCmd.Flags().BoolVar(&startNoBillable, "no-billable", false,
		"mark the entry as non-billable (default: billable)")
}
