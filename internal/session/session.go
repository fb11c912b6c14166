// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session derives the current authentication state from the
// credential store.
//
// The state is never cached: every Current call re-reads the store, because
// another process sharing the same credential store may have logged out, or a
// rejected-credential response may have cleared it since the last read. There
// is no ambient "logged in" flag anywhere; credential presence is the single
// source of truth.
package session

import (
	"mailboard/cli/internal/credstore"
	"mailboard/cli/internal/identity"
)

// State is the derived authentication status.
type State struct {
	Authenticated bool
	Profile       identity.Profile
}

// Anonymous is the state with no credential present.
var Anonymous = State{}

// Session exposes read/mutate operations over the credential store.
type Session struct {
	store *credstore.Store
}

// New constructs a Session over the given store.
func New(store *credstore.Store) *Session {
	return &Session{store: store}
}

// Current recomputes the authentication state from the store. A present
// credential yields Authenticated even when the paired profile is missing or
// unreadable; the profile is display data, not the authority.
func (s *Session) Current() State {
	if _, ok := s.store.ReadToken(); !ok {
		return Anonymous
	}
	p, _ := s.store.ReadProfile()
	return State{Authenticated: true, Profile: p}
}

// Establish writes the credential and profile pair. Current called
// immediately afterwards returns Authenticated with exactly this profile.
func (s *Session) Establish(token string, p identity.Profile) {
	s.store.Write(token, p)
}

// Terminate clears the pair. Current called immediately afterwards returns
// Anonymous, unconditionally.
func (s *Session) Terminate() {
	s.store.Clear()
}

// Token returns the stored credential for attaching to outbound requests.
func (s *Session) Token() (string, bool) {
	return s.store.ReadToken()
}
