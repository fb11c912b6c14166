// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package routeguard decides, per requested navigation path, whether the
// navigation may proceed or must redirect.
//
// The decision is a pure function of the requested path and credential
// presence. It never consults profile fields, keeps no state between
// evaluations, and yields the same decision for the same inputs every time.
package routeguard

import (
	"strings"

	"mailboard/cli/internal/config"
)

// Decision is the outcome of evaluating one navigation.
type Decision int

const (
	// Allow lets the navigation proceed.
	Allow Decision = iota
	// RedirectToLogin sends an unauthenticated visitor to the login path.
	RedirectToLogin
	// RedirectToAuthenticatedHome sends an authenticated visitor away from
	// the login path to the home path.
	RedirectToAuthenticatedHome
)

// String returns a human-readable decision name.
func (d Decision) String() string {
	switch d {
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToAuthenticatedHome:
		return "redirect-to-home"
	default:
		return "allow"
	}
}

// Guard holds the static navigation surface.
type Guard struct {
	protected []string
	loginPath string
	homePath  string
}

// New builds a guard from the configured route sets.
func New(routes config.Routes) *Guard {
	return &Guard{
		protected: routes.Protected,
		loginPath: normalize(routes.LoginPath),
		homePath:  normalize(routes.HomePath),
	}
}

// HomePath returns the redirect target for authenticated visitors of the
// login path.
func (g *Guard) HomePath() string { return g.homePath }

// LoginPath returns the redirect target for unauthenticated visitors of
// protected paths.
func (g *Guard) LoginPath() string { return g.loginPath }

// Decide evaluates one navigation. Rules, in priority order:
//
//  1. protected path without a credential -> RedirectToLogin
//  2. login path with a credential       -> RedirectToAuthenticatedHome
//  3. anything else                      -> Allow
func (g *Guard) Decide(path string, credentialPresent bool) Decision {
	p := normalize(path)

	if g.isProtected(p) && !credentialPresent {
		return RedirectToLogin
	}
	if p == g.loginPath && credentialPresent {
		return RedirectToAuthenticatedHome
	}
	return Allow
}

// isProtected reports whether p falls in the protected-path set. A pattern
// ending in "/*" matches any strict descendant of its base.
func (g *Guard) isProtected(p string) bool {
	for _, pattern := range g.protected {
		if matches(normalizePattern(pattern), p) {
			return true
		}
	}
	return false
}

// matches checks a single pattern against an already-normalized path.
func matches(pattern, p string) bool {
	if base, ok := strings.CutSuffix(pattern, "/*"); ok {
		return strings.HasPrefix(p, base+"/")
	}
	return p == pattern
}

// normalize forces a leading slash and strips a trailing one (except for the
// root path) so that "/dashboard/" and "/dashboard" evaluate identically.
func normalize(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

// normalizePattern normalizes the base of a pattern while preserving a
// trailing "/*" wildcard.
func normalizePattern(pattern string) string {
	if base, ok := strings.CutSuffix(strings.TrimSpace(pattern), "/*"); ok {
		return normalize(base) + "/*"
	}
	return normalize(pattern)
}
