package cmd

import (
	"io"
	"os"
	"strings"

	nexuserrors "nexus/cli/internal/errors"
	"nexus/cli/internal/httperrors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var postImage string

// postCmd publishes a new post with a caption and an optional image.
var postCmd = &cobra.Command{
	Use:   "post <caption>",
	Args:  cobra.MinimumNArgs(1),
	Short: "Publish a new post",
	Long: `The post command publishes a new post to your feed. The caption is taken
from the arguments; attach an image with --image:

  nexus post "golden hour" --image ./sunset.jpg`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sess, be, err := openSession(ctx)
		if err != nil {
			return err
		}
		if !requireAuth(sess) {
			return nil
		}

		caption := strings.Join(args, " ")

		var image io.Reader
		if postImage != "" {
			f, err := os.Open(postImage)
			if err != nil {
				return err
			}
			defer f.Close()
			image = f
		}

		created, err := be.CreatePost(ctx, caption, postImage, image)
		if err != nil {
			if nexuserrors.IsKind(err, nexuserrors.NetworkUnreachable) {
				return httperrors.FormatNetworkError(err, "publishing your post")
			}
			return err
		}

		pterm.Success.Printfln("Posted! id: %s", created.ID)
		return nil
	},
}

// likeCmd toggles the authenticated user's like on a post.
var likeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Args:  cobra.ExactArgs(1),
	Short: "Toggle your like on a post",

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sess, be, err := openSession(ctx)
		if err != nil {
			return err
		}
		if !requireAuth(sess) {
			return nil
		}

		post, err := be.ToggleLike(ctx, args[0])
		if err != nil {
			if nexuserrors.IsKind(err, nexuserrors.NetworkUnreachable) {
				return httperrors.FormatNetworkError(err, "toggling the like")
			}
			return err
		}

		me := ""
		if u := sess.CurrentUser(); u != nil {
			me = u.ID
		}
		if post.LikedBy(me) {
			pterm.Success.Printfln("♥ Liked (%d likes)", len(post.Likes))
		} else {
			pterm.Success.Printfln("♡ Like removed (%d likes)", len(post.Likes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(likeCmd)
	postCmd.Flags().StringVar(&postImage, "image", "", "Path to an image to attach")
}
