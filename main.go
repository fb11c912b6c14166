// Package main is the entry point for the Mailboard CLI application.
// It provides session management and authenticated access to the Mailboard API.
package main

import (
	"mailboard/cli/cmd"
)

// main is the entry point for the Mailboard CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
