// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Mailboard CLI application.
// It implements subcommands for session management, navigation checks, and
// authenticated API actions using the Cobra CLI framework. The package handles
// command parsing, execution, and terminal UI output.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mailboard/cli/internal/config"
	"mailboard/cli/internal/credstore"
	"mailboard/cli/internal/gateway"
	"mailboard/cli/internal/routeguard"
	"mailboard/cli/internal/session"
)

var (
	showVersion bool
)

// services bundles the session layer wired for one command invocation.
type services struct {
	cfg   config.Config
	sess  *session.Session
	gw    *gateway.Gateway
	guard *routeguard.Guard
}

// newServices loads configuration and constructs the credential store,
// session, gateway, and route guard. An unavailable credential store is not
// an error; the session simply reads as anonymous.
func newServices() (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	sess := session.New(credstore.Open())
	return &services{
		cfg:   cfg,
		sess:  sess,
		gw:    gateway.New(cfg.BaseURL, cfg.Endpoints, sess),
		guard: routeguard.New(cfg.Routes),
	}, nil
}

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the Mailboard CLI application.
var rootCmd = &cobra.Command{
	Use:           "mailboard",
	Short:         "Mailboard CLI for session management and authenticated API access",
	Long:          `Mailboard is a command-line client for the Mailboard service. It manages your login session, checks route access, and performs authenticated actions such as sending custom emails.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("mailboard %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}
