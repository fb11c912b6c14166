// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"atomicgo.dev/cursor"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mailboard/cli/internal/httperrors"
	"mailboard/cli/internal/routeguard"
	"mailboard/cli/internal/terminal"
)

var loginEmail string

// loginCmd represents the login command for password authentication.
// It prompts for credentials, submits them to the identity server, and
// persists the issued token together with the returned profile.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Authenticate with your Mailboard account",
	Long: `The login command authenticates against the Mailboard identity server with
your email and password. On success the issued token and your user profile are
stored in the OS credential store, so subsequent commands run authenticated.

If you are already logged in, the command redirects you to your dashboard
instead of prompting again.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, err := newServices()
		if err != nil {
			return err
		}

		// The login view redirects authenticated visitors home.
		_, hasCredential := svc.sess.Token()
		if svc.guard.Decide(svc.cfg.Routes.LoginPath, hasCredential) == routeguard.RedirectToAuthenticatedHome {
			state := svc.sess.Current()
			if state.Profile.Email != "" {
				fmt.Printf("Already logged in as %s\n", state.Profile.Email)
			} else {
				fmt.Println("Already logged in")
			}
			return nil
		}

		email := strings.TrimSpace(loginEmail)
		if email == "" {
			email, err = promptEmail()
			if err != nil {
				return err
			}
		}

		password, err := promptPassword()
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Signing in", []string{"|", "/", "-", "\\"}, 120*time.Millisecond)
		cursor.Hide()
		res, err := svc.gw.Login(ctx, email, password)
		cursor.Show()
		stopSpinner()

		if err != nil {
			return httperrors.Present(err, "logging in")
		}

		svc.sess.Establish(res.Token, res.Profile)

		name := res.Profile.Name
		if name == "" {
			name = res.Profile.Email
		}
		fmt.Printf("✅ Welcome back, %s!\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when omitted)")
}

// promptEmail reads the account email from stdin and scrubs the prompt line
// afterwards so the address does not linger above the spinner.
func promptEmail() (string, error) {
	prompt := "Email: "
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading email: %w", err)
	}
	email := strings.TrimSpace(line)
	// Clean up the prompt line; the greeting after login names the account
	terminal.ClearPreviousLines(len(prompt) + len(email))
	return email, nil
}

// promptPassword reads the password without echo. A newline is printed after
// the read to keep the UI tidy.
func promptPassword() (string, error) {
	fmt.Print("Password: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pw), nil
}
