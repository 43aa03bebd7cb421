package cmd

import (
	nexuserrors "nexus/cli/internal/errors"
	"nexus/cli/internal/httperrors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// followCmd subscribes the authenticated user to another user's posts.
var followCmd = &cobra.Command{
	Use:   "follow <user-id>",
	Args:  cobra.ExactArgs(1),
	Short: "Follow a user",

	RunE: func(cmd *cobra.Command, args []string) error {
		return runFollow(cmd, args[0], true)
	},
}

// unfollowCmd removes the subscription.
var unfollowCmd = &cobra.Command{
	Use:   "unfollow <user-id>",
	Args:  cobra.ExactArgs(1),
	Short: "Unfollow a user",

	RunE: func(cmd *cobra.Command, args []string) error {
		return runFollow(cmd, args[0], false)
	},
}

func runFollow(cmd *cobra.Command, userID string, follow bool) error {
	ctx := cmd.Context()

	sess, be, err := openSession(ctx)
	if err != nil {
		return err
	}
	if !requireAuth(sess) {
		return nil
	}

	action := "unfollowing"
	if follow {
		action = "following"
	}

	if follow {
		err = be.Follow(ctx, userID)
	} else {
		err = be.Unfollow(ctx, userID)
	}
	if err != nil {
		if nexuserrors.IsKind(err, nexuserrors.NetworkUnreachable) {
			return httperrors.FormatNetworkError(err, action+" the user")
		}
		return err
	}

	target, err := be.GetUser(ctx, userID)
	name := userID
	if err == nil && target != nil {
		name = target.DisplayName()
	}
	if follow {
		pterm.Success.Printfln("Now following %s", name)
	} else {
		pterm.Success.Printfln("Unfollowed %s", name)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(unfollowCmd)
}
