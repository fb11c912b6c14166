// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly error handling for API requests.
// It maps the classified error kinds from internal/apierr onto distinct
// terminal messages so the user gets connectivity guidance for transport
// failures, a retry suggestion for server failures, and a re-login hint for
// credential failures instead of a raw error string.
package httperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"mailboard/cli/internal/apierr"
)

// Present displays a user-friendly message for err and returns a wrapped
// error for logging/debugging. context describes the operation that failed,
// e.g. "sending email".
func Present(err error, context string) error {
	if err == nil {
		return nil
	}

	switch apierr.KindOf(err) {
	case apierr.Unauthenticated:
		showUnauthenticated(context)
	case apierr.Rejected:
		showRejected(context)
	case apierr.ClientRequest:
		showClientRequest(context, err)
	case apierr.Server:
		showServerError(context)
	case apierr.Transport:
		showTransportError(context, err)
	default:
		showGenericError(context, err)
	}

	return fmt.Errorf("%s failed: %w", context, err)
}

// showUnauthenticated tells the user to log in first.
func showUnauthenticated(context string) {
	pterm.Printf("🔒 You need to be logged in for %s\n", context)
	pterm.Println()
	pterm.Println("Run 'mailboard login' to get started.")
	pterm.Println()
}

// showRejected explains that the session is no longer valid.
func showRejected(context string) {
	pterm.Printf("🔒 Your session is no longer valid (while %s)\n", context)
	pterm.Println()
	pterm.Println("The server rejected your credential. It may have expired or")
	pterm.Println("been revoked. You have been logged out locally.")
	pterm.Println()
	pterm.Println("Run 'mailboard login' to sign in again.")
	pterm.Println()
}

// showClientRequest surfaces the server's own message for invalid input.
func showClientRequest(context string, err error) {
	msg := "the request was rejected"
	var e *apierr.E
	if errors.As(err, &e) && e.Message != "" {
		msg = e.Message
	}
	pterm.Printf("❌ %s (while %s)\n", msg, context)
	pterm.Println()
}

// showServerError displays a user-friendly server error message.
func showServerError(context string) {
	pterm.Printf("⚠️  Server error while %s\n", context)
	pterm.Println()
	pterm.Println("The Mailboard server encountered an internal error.")
	pterm.Println("This is not a problem with your setup. The issue is on our end.")
	pterm.Println("  • Please try again in a few minutes")
	pterm.Println()
}

// showTransportError displays connectivity guidance based on the failure.
func showTransportError(context string, err error) {
	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "timed out"):
		pterm.Printf("⏱️  Connection timeout while %s\n", context)
		pterm.Println()
		pterm.Println("The server took too long to respond. This could mean:")
		pterm.Println("  • Slow internet connection")
		pterm.Println("  • Server is under heavy load")
		pterm.Println("  • Network firewall is blocking the connection")
	case strings.Contains(lower, "resolve"):
		pterm.Printf("🌐 Cannot resolve server address while %s\n", context)
		pterm.Println()
		pterm.Println("Please check:")
		pterm.Println("  • Your internet connection is working")
		pterm.Println("  • DNS settings are correct")
	case strings.Contains(lower, "refused"):
		pterm.Printf("🚫 Connection refused while %s\n", context)
		pterm.Println()
		pterm.Println("The server is not accepting connections. This could mean:")
		pterm.Println("  • The service is temporarily down")
		pterm.Println("  • Firewall is blocking the connection")
	default:
		pterm.Printf("❌ Cannot reach the Mailboard service while %s\n", context)
		pterm.Println()
		pterm.Println("Please check your internet connection and firewall settings.")
	}
	pterm.Println()
}

// showGenericError displays a generic message for unclassified errors.
func showGenericError(context string, err error) {
	pterm.Printf("❌ Unexpected error while %s\n", context)
	pterm.Println()

	shortErr := err.Error()
	if len(shortErr) > 100 {
		shortErr = shortErr[:100] + "..."
	}
	pterm.Debug.Printf("Technical details: %s\n", shortErr)
	pterm.Println()
}
