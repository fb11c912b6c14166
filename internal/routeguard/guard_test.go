// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package routeguard

import (
	"testing"

	"mailboard/cli/internal/config"
)

func defaultGuard() *Guard {
	return New(config.Defaults().Routes)
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		credential bool
		want       Decision
	}{
		{
			name:       "protected path without credential redirects to login",
			path:       "/dashboard",
			credential: false,
			want:       RedirectToLogin,
		},
		{
			name:       "protected descendant without credential redirects to login",
			path:       "/dashboard/settings",
			credential: false,
			want:       RedirectToLogin,
		},
		{
			name:       "deep protected descendant without credential",
			path:       "/dashboard/settings/profile",
			credential: false,
			want:       RedirectToLogin,
		},
		{
			name:       "protected path with credential renders",
			path:       "/dashboard",
			credential: true,
			want:       Allow,
		},
		{
			name:       "login path with credential redirects home",
			path:       "/login",
			credential: true,
			want:       RedirectToAuthenticatedHome,
		},
		{
			name:       "login path without credential renders",
			path:       "/login",
			credential: false,
			want:       Allow,
		},
		{
			name:       "public page ignores missing credential",
			path:       "/pricing",
			credential: false,
			want:       Allow,
		},
		{
			name:       "public page ignores present credential",
			path:       "/pricing",
			credential: true,
			want:       Allow,
		},
		{
			name:       "root is public",
			path:       "/",
			credential: false,
			want:       Allow,
		},
		{
			name:       "sibling prefix is not protected",
			path:       "/dashboards",
			credential: false,
			want:       Allow,
		},
		{
			name:       "trailing slash normalizes to protected",
			path:       "/dashboard/",
			credential: false,
			want:       RedirectToLogin,
		},
		{
			name:       "missing leading slash normalizes",
			path:       "login",
			credential: true,
			want:       RedirectToAuthenticatedHome,
		},
	}

	g := defaultGuard()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Decide(tt.path, tt.credential)
			if got != tt.want {
				t.Errorf("Decide(%q, %t) = %v, want %v", tt.path, tt.credential, got, tt.want)
			}
		})
	}
}

// The decision must be stable under repeated evaluation with no hidden state.
func TestDecideIdempotent(t *testing.T) {
	g := defaultGuard()
	paths := []string{"/dashboard", "/dashboard/mail", "/login", "/", "/about"}
	for _, path := range paths {
		for _, credential := range []bool{false, true} {
			first := g.Decide(path, credential)
			for i := 0; i < 10; i++ {
				if got := g.Decide(path, credential); got != first {
					t.Fatalf("Decide(%q, %t) changed between evaluations: %v then %v",
						path, credential, first, got)
				}
			}
		}
	}
}

func TestDecisionString(t *testing.T) {
	tests := []struct {
		d    Decision
		want string
	}{
		{Allow, "allow"},
		{RedirectToLogin, "redirect-to-login"},
		{RedirectToAuthenticatedHome, "redirect-to-home"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Decision(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestCustomRouteSets(t *testing.T) {
	g := New(config.Routes{
		Protected: []string{"/admin/*", "/billing"},
		LoginPath: "/signin",
		HomePath:  "/admin/overview",
	})

	if got := g.Decide("/admin/users", false); got != RedirectToLogin {
		t.Errorf("Decide(/admin/users, false) = %v, want RedirectToLogin", got)
	}
	// "/admin/*" matches strict descendants only
	if got := g.Decide("/admin", false); got != Allow {
		t.Errorf("Decide(/admin, false) = %v, want Allow", got)
	}
	if got := g.Decide("/billing", false); got != RedirectToLogin {
		t.Errorf("Decide(/billing, false) = %v, want RedirectToLogin", got)
	}
	if got := g.Decide("/signin", true); got != RedirectToAuthenticatedHome {
		t.Errorf("Decide(/signin, true) = %v, want RedirectToAuthenticatedHome", got)
	}
}
