package cmd

import (
	"fmt"
	"time"

	nexuserrors "nexus/cli/internal/errors"
	"nexus/cli/internal/httperrors"
	"nexus/cli/internal/models"
	"nexus/cli/internal/timeutil"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var feedUser string

// feedCmd renders the home feed, or a single user's posts with --user.
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Browse the photo feed",
	Long: `The feed command fetches and renders the home feed: who posted, the
caption, like counts, and how long ago. Use --user to list a single
user's posts instead.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sess, be, err := openSession(ctx)
		if err != nil {
			return err
		}
		if !requireAuth(sess) {
			return nil
		}

		var posts []models.Post
		if feedUser != "" {
			posts, err = be.UserPosts(ctx, feedUser)
		} else {
			posts, err = be.Feed(ctx)
		}
		if err != nil {
			if nexuserrors.IsKind(err, nexuserrors.NetworkUnreachable) {
				return httperrors.FormatNetworkError(err, "fetching the feed")
			}
			return err
		}

		if len(posts) == 0 {
			pterm.Println("Nothing here yet. Follow some people or post something!")
			return nil
		}

		me := ""
		if u := sess.CurrentUser(); u != nil {
			me = u.ID
		}
		now := time.Now()
		for i := range posts {
			renderPost(&posts[i], me, now)
		}
		return nil
	},
}

// renderPost prints one feed entry.
func renderPost(post *models.Post, viewerID string, now time.Time) {
	heart := "♡"
	if post.LikedBy(viewerID) {
		heart = "♥"
	}
	header := pterm.Bold.Sprint(post.User.DisplayName())
	if age := timeutil.Relative(post.Created(), now); age != "" {
		header += pterm.Gray("  ·  " + age)
	}
	pterm.Println(header)
	if post.Caption != "" {
		pterm.Println("  " + post.Caption)
	}
	if post.ImageURL != "" {
		pterm.Println("  " + pterm.Gray(post.ImageURL))
	}
	pterm.Printfln("  %s %d    id: %s", heart, len(post.Likes), post.ID)
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.Flags().StringVar(&feedUser, "user", "", "Show posts of this user id instead of the home feed")
}
