// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing authentication state.
// It removes the stored token and cached profile from the OS credential store.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved credential and cached profile",
	Long: `The logout command clears the local session: the bearer token and the cached
user profile are removed from the OS credential store as a pair. The session
reads as anonymous immediately afterwards.

The server keeps no session state for this client, so no remote call is made.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newServices()
		if err != nil {
			return err
		}

		svc.sess.Terminate()

		fmt.Println("✅ Logged out; credential and profile removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
