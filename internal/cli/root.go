package cli

import (
	"github.com/andy/togglcli/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "togglcli",
	Short: "A command-line assistant for Toggl Track",
	Long: `Togglcli starts and stops Toggl time entries with deterministic
15-minute rounding, and keeps a local project list with human-friendly
aliases and a default project.

Run 'togglcli init' once to fetch your projects, then 'togglcli start' and
'togglcli end' to track time.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(tokenCmd)
}
