// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mailboard/cli/internal/routeguard"
)

var routesAnonymous bool

// routesCmd represents the routes command for inspecting guard decisions.
// It evaluates a navigation path against the configured route sets and
// prints the resulting decision.
var routesCmd = &cobra.Command{
	Use:   "routes <path>",
	Short: "Show the navigation decision for a path",
	Long: `The routes command evaluates a navigation path against the route guard and
prints the decision: allow, redirect-to-login, or redirect-to-home. By default
the current credential state is used; --anonymous evaluates the path as a
logged-out visitor.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}

		_, hasCredential := svc.sess.Token()
		if routesAnonymous {
			hasCredential = false
		}

		decision := svc.guard.Decide(args[0], hasCredential)
		fmt.Printf("%s (credential present: %t) -> %s", args[0], hasCredential, decision)
		switch decision {
		case routeguard.RedirectToLogin:
			fmt.Printf(" (%s)", svc.guard.LoginPath())
		case routeguard.RedirectToAuthenticatedHome:
			fmt.Printf(" (%s)", svc.guard.HomePath())
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
	routesCmd.Flags().BoolVar(&routesAnonymous, "anonymous", false, "Evaluate as a logged-out visitor")
}
