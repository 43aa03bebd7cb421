package cmd

import (
	"fmt"
	"strings"

	nexuserrors "nexus/cli/internal/errors"
	"nexus/cli/internal/httperrors"
	"nexus/cli/internal/models"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	profileName      string
	profileBio       string
	profileGender    string
	profileBirthday  string
	profileHeight    float64
	profileWeight    float64
	profileInterests []string
)

// profileCmd shows the authenticated user's profile, or updates it when any
// of the edit flags are set. Updates go through PUT /user/me as a partial
// payload; untouched fields stay as they are on the server.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	Long: `Without flags, the profile command refreshes and displays your profile.
With flags, it submits a partial update containing only the fields you set:

  nexus profile --name "Alice Smith" --bio "street photography"
  nexus profile --interests travel,food --height 170`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sess, be, err := openSession(ctx)
		if err != nil {
			return err
		}
		if !requireAuth(sess) {
			return nil
		}

		patch := models.ProfileUpdate{
			Name:      profileName,
			Bio:       profileBio,
			Gender:    profileGender,
			Birthday:  profileBirthday,
			Height:    profileHeight,
			Weight:    profileWeight,
			Interests: profileInterests,
		}

		if patch.Empty() {
			if err := sess.RefreshUser(ctx); err != nil {
				if nexuserrors.IsKind(err, nexuserrors.NetworkUnreachable) && sess.CurrentUser() != nil {
					pterm.Warning.Println("Backend unreachable, showing cached profile.")
				} else {
					return err
				}
			}
			renderProfile(sess.CurrentUser())
			return nil
		}

		updated, err := be.UpdateProfile(ctx, patch)
		if err != nil {
			if nexuserrors.IsKind(err, nexuserrors.NetworkUnreachable) {
				return httperrors.FormatNetworkError(err, "updating your profile")
			}
			return err
		}
		pterm.Success.Println("Profile updated.")
		renderProfile(updated)
		return nil
	},
}

// renderProfile prints a profile as a two-column table.
func renderProfile(user *models.User) {
	if user == nil {
		pterm.Println("No profile data available.")
		return
	}

	rows := pterm.TableData{
		{"Username", user.Username},
		{"Name", user.Name},
		{"Email", user.Email},
		{"Bio", user.Bio},
		{"Followers", fmt.Sprintf("%d", len(user.Followers))},
		{"Following", fmt.Sprintf("%d", len(user.Following))},
	}
	if len(user.Interests) > 0 {
		rows = append(rows, []string{"Interests", strings.Join(user.Interests, ", ")})
	}
	if user.Avatar != "" {
		rows = append(rows, []string{"Avatar", user.Avatar})
	}
	_ = pterm.DefaultTable.WithData(rows).Render()
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileCmd.Flags().StringVar(&profileBio, "bio", "", "Profile bio")
	profileCmd.Flags().StringVar(&profileGender, "gender", "", "Gender")
	profileCmd.Flags().StringVar(&profileBirthday, "birthday", "", "Birthday (YYYY-MM-DD)")
	profileCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileCmd.Flags().StringSliceVar(&profileInterests, "interests", nil, "Comma-separated interest tags")
}
