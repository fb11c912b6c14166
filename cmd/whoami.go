package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mailboard/cli/internal/httperrors"
)

var whoamiRefresh bool

// whoamiCmd represents the whoami command for displaying current authentication state.
// It derives the session from the credential store and shows the cached profile.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current authenticated account",
	Long: `The whoami command shows the account you are currently logged in as, based on
the credential and profile stored locally. No network request is made unless
--refresh is given, in which case the profile is re-fetched from the server.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, err := newServices()
		if err != nil {
			return err
		}

		state := svc.sess.Current()
		if !state.Authenticated {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'mailboard login' to get started.")
			return nil
		}

		profile := state.Profile
		if profile.ID == "" && profile.Email == "" {
			// Credential present, cached profile unreadable
			fmt.Println("👤 Logged in, but the cached profile is unavailable.")
			fmt.Println("   Run 'mailboard login' again to restore it.")
			return nil
		}
		if whoamiRefresh && profile.ID != "" {
			fresh, err := svc.gw.Profile(ctx, profile.ID)
			if err != nil {
				return httperrors.Present(err, "refreshing your profile")
			}
			if token, ok := svc.sess.Token(); ok {
				svc.sess.Establish(token, fresh)
			}
			profile = fresh
		}

		if profile.Email != "" {
			fmt.Printf("👤 Current user: %s", profile.Email)
		} else {
			fmt.Printf("👤 Current user: %s", profile.ID)
		}
		if profile.Name != "" {
			fmt.Printf(" (%s)", profile.Name)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().BoolVar(&whoamiRefresh, "refresh", false, "Re-fetch the profile from the server")
}
