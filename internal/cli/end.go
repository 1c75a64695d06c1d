package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var endCmd = &cobra.Command{
	Use:     "end",
	Aliases: []string{"e"},
	Short:   "End the current time entry",
	Long: `Stop the currently running time entry. The stop time rounds down to
the previous 15-minute boundary, except when start and stop fall inside the
same block: then it rounds up so the entry never collapses to zero length.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := appInstance.Tracker.End(ctx)
		if err != nil {
			return fmt.Errorf("failed to end entry: %w", err)
		}

		if result.RoundedUp {
			fmt.Println("Note: entry started and ended within the same 15-minute block; rounding the stop time up.")
		}
		fmt.Printf("✓ Stopped '%s'\n", result.Description)
		fmt.Printf("  Stop: %s\n", result.StoppedAt.Format("2006-01-02 15:04 MST"))
		return nil
	},
}
