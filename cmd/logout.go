package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing authentication state.
// It removes the stored token and cached profile from the OS keychain and
// clears the in-memory session. Sign-out never fails: cleanup is
// best-effort and the logged-out state holds regardless of storage outcome.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove saved credentials",
	Long: `The logout command clears all authentication state from the local system:
the bearer token and the cached profile snapshot stored in the OS keychain.
It succeeds even when nothing was stored.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sess, _, err := openSession(ctx)
		if err != nil {
			return err
		}
		sess.SignOut(ctx)

		pterm.Success.Println("Signed out. All credentials have been removed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
