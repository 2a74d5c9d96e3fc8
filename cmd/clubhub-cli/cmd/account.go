package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"clubhub/internal/application/commands"
)

var (
	accountPassword string
	accountConfirm  string
)

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create an account",
	Long: `Create an account in the deck database.

Usernames are 3 to 11 characters without spaces; passwords are at
least 6 characters. Passwords are stored as bcrypt hashes.

Examples:
  clubhub-cli register illini -p hunter22 --confirm hunter22`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRegisterCommand(GetRuntime().Store, args[0], accountPassword, accountConfirm).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Check an account's password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewLoginCommand(GetRuntime().Store, args[0], accountPassword).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)

	registerCmd.Flags().StringVarP(&accountPassword, "password", "p", "", "account password")
	registerCmd.Flags().StringVar(&accountConfirm, "confirm", "", "password confirmation")
	loginCmd.Flags().StringVarP(&accountPassword, "password", "p", "", "account password")
}
