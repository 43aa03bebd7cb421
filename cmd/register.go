package cmd

import (
	nexuserrors "nexus/cli/internal/errors"
	"nexus/cli/internal/httperrors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// registerCmd creates a new Nexus account. Registration does not issue a
// token; the user signs in afterwards with the credentials they just chose.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Nexus account",
	Long: `The register command creates a new Nexus account. It prompts for a
username, email address, and password, validates them locally, and submits
the registration to the backend. Run 'nexus login' afterwards to sign in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		_, be, err := openSession(ctx)
		if err != nil {
			return err
		}

		username, err := promptLine("Username: ")
		if err != nil {
			return err
		}
		email, err := promptLine("Email: ")
		if err != nil {
			return err
		}
		password, err := promptSecret("Password: ")
		if err != nil {
			return err
		}

		if err := be.Register(ctx, username, email, password); err != nil {
			if nexuserrors.IsKind(err, nexuserrors.Validation) {
				pterm.Error.Printfln("Registration rejected: %v", err)
				return err
			}
			if nexuserrors.IsKind(err, nexuserrors.NetworkUnreachable) {
				return httperrors.FormatNetworkError(err, "registering")
			}
			return err
		}

		pterm.Success.Printfln("Account %s created. Run 'nexus login' to sign in.", username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
