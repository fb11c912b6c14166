// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/require"

	"mailboard/cli/internal/credstore"
	"mailboard/cli/internal/identity"
	"mailboard/cli/internal/keychain"
)

func newTestSession(t *testing.T) (*Session, *credstore.Store) {
	t.Helper()
	store := credstore.NewWithManager(keychain.NewRingManager(keyring.NewArrayKeyring(nil)))
	return New(store), store
}

func profileA() identity.Profile {
	return identity.Profile{ID: "u1", Name: "A", Email: "a@b.com", Role: "user", OrgID: "org1"}
}

func TestCurrentOnEmptyStoreIsAnonymous(t *testing.T) {
	s, _ := newTestSession(t)
	require.Equal(t, Anonymous, s.Current())
}

// Current immediately after Establish returns Authenticated with the exact
// profile passed in.
func TestEstablishThenCurrent(t *testing.T) {
	s, _ := newTestSession(t)

	s.Establish("tok123", profileA())

	state := s.Current()
	require.True(t, state.Authenticated)
	require.Equal(t, profileA(), state.Profile)

	token, ok := s.Token()
	require.True(t, ok)
	require.Equal(t, "tok123", token)
}

// Current immediately after Terminate returns Anonymous, unconditionally,
// even before any other operation runs.
func TestTerminateThenCurrent(t *testing.T) {
	s, _ := newTestSession(t)

	s.Establish("tok123", profileA())
	s.Terminate()

	require.Equal(t, Anonymous, s.Current())
	_, ok := s.Token()
	require.False(t, ok)
}

func TestTerminateWithoutSessionIsNoop(t *testing.T) {
	s, _ := newTestSession(t)
	require.NotPanics(t, func() { s.Terminate() })
	require.Equal(t, Anonymous, s.Current())
}

// The state is derived on every read, never cached: a store mutation made
// behind the session's back is visible on the next Current call.
func TestCurrentIsDerivedNotCached(t *testing.T) {
	s, store := newTestSession(t)

	s.Establish("tok123", profileA())
	require.True(t, s.Current().Authenticated)

	// Another context sharing the store logs out
	store.Clear()
	require.Equal(t, Anonymous, s.Current())

	// And logs back in as someone else
	other := identity.Profile{ID: "u2", Name: "B", Email: "b@c.com", Role: "admin", OrgID: "org2"}
	store.Write("tok456", other)
	state := s.Current()
	require.True(t, state.Authenticated)
	require.Equal(t, other, state.Profile)
}

// A credential without a readable profile still counts as authenticated:
// credential presence is the sole authority.
func TestCredentialWithoutProfileIsAuthenticated(t *testing.T) {
	ring := keyring.NewArrayKeyring(nil)
	s := New(credstore.NewWithManager(keychain.NewRingManager(ring)))

	require.NoError(t, ring.Set(keyring.Item{Key: keychain.KeyToken, Data: []byte("tok123")}))

	state := s.Current()
	require.True(t, state.Authenticated)
	require.Equal(t, identity.Profile{}, state.Profile)
}

func TestDegradedStoreReadsAnonymous(t *testing.T) {
	s := New(&credstore.Store{})

	s.Establish("tok123", profileA())
	require.Equal(t, Anonymous, s.Current())
}
