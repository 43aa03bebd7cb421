package cmd

import (
	"fmt"
	"os"
	"time"

	nexuserrors "nexus/cli/internal/errors"
	"nexus/cli/internal/httperrors"
	"nexus/cli/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// loginCmd represents the login command for password authentication.
// It prompts for an identifier (email or username) and password, exchanges
// them for a bearer token, and signs the session in. Tokens are stored in
// the OS keychain so the session survives across invocations.
var loginCmd = &cobra.Command{
	Use:     "login [identifier]",
	Aliases: []string{"auth"},
	Args:    cobra.MaximumNArgs(1),
	Short:   "Sign in to Nexus with your email or username",
	Long: `The login command authenticates against the Nexus backend with your email
or username and password. On success the issued token is stored securely in
the OS keychain and your profile is fetched and cached, so subsequent
commands run as you until 'nexus logout'.

If already logged in with valid credentials, the flow is skipped.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sess, be, err := openSession(ctx)
		if err != nil {
			return err
		}
		// If already logged in with a valid token, short-circuit
		if sess.Authenticated() && sess.CurrentUser() != nil {
			fmt.Printf("Already logged in as %s\n", sess.CurrentUser().Username)
			return nil
		}

		identifier := ""
		if len(args) == 1 {
			identifier = args[0]
		} else {
			identifier, err = promptLine("Email or username: ")
			if err != nil {
				return err
			}
		}
		password, err := promptSecret("Password: ")
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Signing in", []string{"|", "/", "-", "\\"}, 120*time.Millisecond)
		token, err := be.Login(ctx, identifier, password)
		stopSpinner()
		if err != nil {
			if nexuserrors.IsKind(err, nexuserrors.AuthRejected) {
				pterm.Error.Println("Invalid credentials. Check your email/username and password.")
				return err
			}
			if nexuserrors.IsKind(err, nexuserrors.NetworkUnreachable) {
				return httperrors.FormatNetworkError(err, "signing in")
			}
			// Mask anything secret-shaped before it reaches the terminal.
			pterm.Error.Println(logging.PresentError("login failed", err))
			return err
		}

		if err := sess.SignIn(ctx, token); err != nil {
			// The token is installed; only the profile fetch or the
			// persistence failed. Say so instead of pretending the login
			// did not happen.
			pterm.Warning.Printfln("Signed in, but: %v", err)
			return nil
		}

		user := sess.CurrentUser()
		if user != nil {
			pterm.Success.Printfln("Welcome back, %s!", user.DisplayName())
		} else {
			pterm.Success.Println("Login successful!")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
