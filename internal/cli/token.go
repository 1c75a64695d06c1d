package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andy/togglcli/internal/auth"
)

// The token commands run without an initialized app: they only touch the
// system keyring.

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the stored API token",
	Long: `Store or remove the Toggl API token in the system keyring. The
` + auth.EnvToken + ` environment variable, when set, always takes precedence.`,
}

var tokenSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Prompt for the API token and store it in the system keyring",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := auth.PromptToken()
		if err != nil {
			return err
		}
		if err := auth.StoreToken(token); err != nil {
			return err
		}
		fmt.Println("✓ Token stored in the system keyring")
		return nil
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the API token from the system keyring",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := auth.ClearToken(); err != nil {
			return err
		}
		fmt.Println("✓ Token removed from the system keyring")
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenClearCmd)
}
