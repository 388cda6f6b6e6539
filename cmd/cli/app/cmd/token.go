package cmd

import (
	"overlay/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenDeleteCmd)
	tokenCmd.AddCommand(tokenStatusCmd)
	rootCmd.AddCommand(tokenCmd)
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the stored GitHub token",
	Long:  `Manage the GitHub access token stored in the operating system keyring.`,
}

var tokenSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store a GitHub token",
	Long:  `Store a GitHub token in the keyring. The value is prompted securely and never shown.`,
	Example: `  # Store a token (value is prompted securely)
  overlay token set`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTokenCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleSet()
	},
}

var tokenDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the stored GitHub token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTokenCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleDelete()
	},
}

var tokenStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a GitHub token is stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTokenCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleStatus()
	},
}
