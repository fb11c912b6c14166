// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"mailboard/cli/internal/routeguard"
)

// dashboardCmd represents the dashboard command, the CLI counterpart of the
// app's protected dashboard view. The route guard is consulted before
// rendering, exactly as a navigation to /dashboard would be.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open your account dashboard",
	Long: `The dashboard command renders your account overview. The dashboard is a
protected view: without a stored credential the navigation is redirected to
login instead of rendering.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}

		_, hasCredential := svc.sess.Token()
		switch svc.guard.Decide(svc.cfg.Routes.HomePath, hasCredential) {
		case routeguard.RedirectToLogin:
			fmt.Printf("🔒 %s requires a login (redirected to %s)\n", svc.cfg.Routes.HomePath, svc.guard.LoginPath())
			fmt.Println("   Run 'mailboard login' to get started.")
			return nil
		case routeguard.Allow:
			// fall through to render
		}

		state := svc.sess.Current()
		pterm.Println()
		pterm.Printf("📋 Dashboard — %s\n", state.Profile.Name)
		pterm.Println()
		pterm.Printf("   Email:        %s\n", state.Profile.Email)
		pterm.Printf("   Role:         %s\n", state.Profile.Role)
		pterm.Printf("   Organization: %s\n", state.Profile.OrgID)
		pterm.Println()
		pterm.Println("   Send an email with 'mailboard email --to ... --subject ... --message ...'")
		pterm.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
