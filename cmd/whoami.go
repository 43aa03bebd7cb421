package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command for displaying current authentication state.
// It restores the session from the keychain, validates the stored token
// against the backend during bootstrap, and shows the account identity.
// When the backend is unreachable the cached profile snapshot is shown.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current authenticated account",
	Long: `The whoami command displays information about the currently authenticated
account. The stored token is validated against the backend; an expired or
revoked token is purged, while an unreachable backend falls back to the
last cached profile.

This command is useful for verifying authentication status before running
other commands that require authentication.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sess, _, err := openSession(ctx)
		if err != nil {
			return err
		}
		if !requireAuth(sess) {
			return nil
		}

		user := sess.CurrentUser()
		if user == nil {
			fmt.Println("👤 Signed in (profile unavailable right now)")
			return nil
		}
		if user.Email != "" {
			fmt.Printf("👤 Current user: %s (%s)\n", user.Username, user.Email)
		} else {
			fmt.Printf("👤 Current user: %s\n", user.Username)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
