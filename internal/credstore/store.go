// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package credstore implements durable persistence for the bearer credential
// and the cached user profile.
//
// Entries are stored in the OS credential store via internal/keychain. Every
// operation is synchronous and total: when no storage backend is available
// (headless system, locked keychain), reads report absent and writes/clears
// become silent no-ops, so the rest of the system degrades to anonymous
// instead of raising.
package credstore

import (
	"fmt"
	"os"

	"mailboard/cli/internal/identity"
	"mailboard/cli/internal/keychain"
)

var verboseStore = os.Getenv("MAILBOARD_VERBOSE") == "1"

// Store is the capability-checked credential store. The zero value is a
// degraded store with no backend.
type Store struct {
	manager *keychain.Manager
}

// Open returns a store backed by the OS keychain. When the keychain cannot
// be initialized the returned store is degraded rather than an error: the
// caller observes an always-anonymous session.
func Open() *Store {
	m, err := keychain.GetManager()
	if err != nil {
		if verboseStore {
			fmt.Printf("[DEBUG] credstore.Open: keychain unavailable, degrading: %v\n", err)
		}
		return &Store{}
	}
	return &Store{manager: m}
}

// NewWithManager wraps an explicit keychain manager. Used by tests with an
// in-memory ring.
func NewWithManager(m *keychain.Manager) *Store {
	return &Store{manager: m}
}

// Available reports whether a storage backend is present.
func (s *Store) Available() bool {
	return s != nil && s.manager != nil
}

// Write persists the credential and profile as a pair. A degraded store
// makes this a no-op; a partial storage failure clears both entries so
// observers never see one without the other.
func (s *Store) Write(token string, p identity.Profile) {
	if !s.Available() {
		return
	}
	data, err := identity.Encode(p)
	if err != nil {
		if verboseStore {
			fmt.Printf("[DEBUG] credstore.Write: profile encode failed: %v\n", err)
		}
		return
	}
	if err := s.manager.SaveCredential(token, data); err != nil {
		if verboseStore {
			fmt.Printf("[DEBUG] credstore.Write: save failed: %v\n", err)
		}
		// Do not leave a half-written pair behind
		_ = s.manager.ClearCredential()
	}
}

// ReadToken returns the stored credential, or ok=false when absent.
// Presence of the token is the sole authority for authentication status.
func (s *Store) ReadToken() (string, bool) {
	if !s.Available() {
		return "", false
	}
	token, err := s.manager.LoadToken()
	if err != nil || token == "" {
		if verboseStore && err != nil {
			fmt.Printf("[DEBUG] credstore.ReadToken: load failed: %v\n", err)
		}
		return "", false
	}
	return token, true
}

// ReadProfile returns the stored profile, or ok=false when absent. A
// malformed or schema-invalid stored value is treated as absent, not as an
// error.
func (s *Store) ReadProfile() (identity.Profile, bool) {
	if !s.Available() {
		return identity.Profile{}, false
	}
	data, err := s.manager.LoadProfile()
	if err != nil || len(data) == 0 {
		if verboseStore && err != nil {
			fmt.Printf("[DEBUG] credstore.ReadProfile: load failed: %v\n", err)
		}
		return identity.Profile{}, false
	}
	p, err := identity.Decode(data)
	if err != nil {
		if verboseStore {
			fmt.Printf("[DEBUG] credstore.ReadProfile: malformed stored profile treated as absent: %v\n", err)
		}
		return identity.Profile{}, false
	}
	return p, true
}

// Clear removes both entries. Total: never fails, no-op when degraded.
func (s *Store) Clear() {
	if !s.Available() {
		return
	}
	_ = s.manager.ClearCredential()
}
