// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"time"

	"atomicgo.dev/cursor"
	"github.com/spf13/cobra"

	"mailboard/cli/internal/httperrors"
)

var (
	emailTo      string
	emailSubject string
	emailMessage string
)

// emailCmd represents the email command for sending a custom email through
// the Mailboard API. This is an authenticated call: without a stored
// credential it fails fast without any network request.
var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Send a custom email through your account",
	Long: `The email command sends a custom email via the Mailboard service using your
current session. The stored bearer credential is attached to the request; if
the server rejects it, you are logged out locally and asked to sign in again.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, err := newServices()
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Sending email", []string{"|", "/", "-", "\\"}, 120*time.Millisecond)
		cursor.Hide()
		err = svc.gw.SendCustomEmail(ctx, emailTo, emailSubject, emailMessage)
		cursor.Show()
		stopSpinner()

		if err != nil {
			return httperrors.Present(err, "sending email")
		}

		fmt.Printf("✉️  Email sent to %s\n", emailTo)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)
	emailCmd.Flags().StringVar(&emailTo, "to", "", "Recipient address")
	emailCmd.Flags().StringVar(&emailSubject, "subject", "", "Email subject")
	emailCmd.Flags().StringVar(&emailMessage, "message", "", "Email body")
	_ = emailCmd.MarkFlagRequired("to")
	_ = emailCmd.MarkFlagRequired("subject")
	_ = emailCmd.MarkFlagRequired("message")
}
