// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package apierr defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. This enables better error categorization, logging,
// and user experience by providing context-aware error information.
//
// The package supports wrapping underlying errors while maintaining error kind
// information, making it easier to handle different types of failures appropriately.
package apierr

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Unauthenticated indicates no credential was present for a call that requires one.
	Unauthenticated Kind = "unauthenticated"
	// Rejected indicates the server refused the presented credential (401/403).
	Rejected Kind = "rejected"
	// ClientRequest indicates malformed or invalid input (4xx other than 401/403).
	ClientRequest Kind = "client_request"
	// Server indicates a 5xx response or a malformed success envelope.
	Server Kind = "server"
	// Transport indicates the server could not be reached (timeout, DNS, refused).
	Transport Kind = "transport"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Status  int // HTTP status when the error came from a response, else 0
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// FromStatus builds an error for a non-success HTTP status. The server-provided
// message is used when available; otherwise a generic message for the status
// class is substituted.
func FromStatus(status int, serverMessage string) *E {
	msg := strings.TrimSpace(serverMessage)
	var kind Kind
	switch {
	case status == 401 || status == 403:
		kind = Rejected
		if msg == "" {
			msg = "credential rejected by server"
		}
	case status >= 400 && status < 500:
		kind = ClientRequest
		if msg == "" {
			msg = "request rejected by server"
		}
	default:
		kind = Server
		if msg == "" {
			msg = "server error"
		}
	}
	return &E{Kind: kind, Message: msg, Status: status}
}

// FromTransport classifies a round-trip failure. The message distinguishes
// timeouts, DNS failures, and refused connections so the presentation layer
// can suggest a connectivity check rather than a retry.
func FromTransport(err error) *E {
	switch {
	case isTimeout(err):
		return Wrap(Transport, "connection timed out", err)
	case isDNS(err):
		return Wrap(Transport, "cannot resolve server address", err)
	case isRefused(err):
		return Wrap(Transport, "connection refused", err)
	default:
		return Wrap(Transport, "network unreachable", err)
	}
}

// KindOf extracts the Kind from err, or "" when err carries none.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }

// StatusOf extracts the HTTP status from err, or 0 when none is attached.
func StatusOf(err error) int {
	var e *E
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// isTimeout checks if the error is a timeout error.
func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}

// isDNS checks if the error is a DNS resolution error.
func isDNS(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isRefused checks if the error is a connection refused error.
func isRefused(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}
