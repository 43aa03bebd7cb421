package cmd

import (
	"os"

	nexuserrors "nexus/cli/internal/errors"
	"nexus/cli/internal/httperrors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// avatarCmd uploads a new avatar image for the authenticated user.
// The image is sent as a multipart payload under the "file" field, the
// content type inferred from the file extension.
var avatarCmd = &cobra.Command{
	Use:   "avatar <image-file>",
	Args:  cobra.ExactArgs(1),
	Short: "Upload a new avatar image",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sess, be, err := openSession(ctx)
		if err != nil {
			return err
		}
		if !requireAuth(sess) {
			return nil
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		updated, err := be.UploadAvatar(ctx, args[0], f)
		if err != nil {
			if nexuserrors.IsKind(err, nexuserrors.NetworkUnreachable) {
				return httperrors.FormatNetworkError(err, "uploading your avatar")
			}
			return err
		}

		if updated.Avatar != "" {
			pterm.Success.Printfln("Avatar updated: %s", updated.Avatar)
		} else {
			pterm.Success.Println("Avatar updated.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(avatarCmd)
}
