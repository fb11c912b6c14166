// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package credstore

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/require"

	"mailboard/cli/internal/identity"
	"mailboard/cli/internal/keychain"
)

func newTestStore(t *testing.T) (*Store, keyring.Keyring) {
	t.Helper()
	ring := keyring.NewArrayKeyring(nil)
	return NewWithManager(keychain.NewRingManager(ring)), ring
}

func testProfile() identity.Profile {
	return identity.Profile{ID: "u1", Name: "A", Email: "a@b.com", Role: "user", OrgID: "org1"}
}

func TestWriteReadPair(t *testing.T) {
	s, _ := newTestStore(t)

	s.Write("tok123", testProfile())

	token, ok := s.ReadToken()
	require.True(t, ok)
	require.Equal(t, "tok123", token)

	p, ok := s.ReadProfile()
	require.True(t, ok)
	require.Equal(t, testProfile(), p)
}

// Token and profile are written and cleared as a pair: after Clear, both are
// absent — never one without the other.
func TestClearRemovesBothEntries(t *testing.T) {
	s, ring := newTestStore(t)

	s.Write("tok123", testProfile())
	s.Clear()

	_, ok := s.ReadToken()
	require.False(t, ok)
	_, ok = s.ReadProfile()
	require.False(t, ok)

	keys, err := ring.Keys()
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestReadsOnEmptyStore(t *testing.T) {
	s, _ := newTestStore(t)

	_, ok := s.ReadToken()
	require.False(t, ok)
	_, ok = s.ReadProfile()
	require.False(t, ok)
}

// A malformed stored profile must read as absent, not crash the read.
func TestMalformedStoredProfileIsAbsent(t *testing.T) {
	s, ring := newTestStore(t)

	require.NoError(t, ring.Set(keyring.Item{Key: keychain.KeyToken, Data: []byte("tok123")}))
	require.NoError(t, ring.Set(keyring.Item{Key: keychain.KeyProfile, Data: []byte(`{"id":`)}))

	_, ok := s.ReadProfile()
	require.False(t, ok)

	// The credential itself is still present and authoritative
	token, ok := s.ReadToken()
	require.True(t, ok)
	require.Equal(t, "tok123", token)
}

func TestSchemaInvalidProfileIsAbsent(t *testing.T) {
	s, ring := newTestStore(t)

	require.NoError(t, ring.Set(keyring.Item{Key: keychain.KeyProfile, Data: []byte(`{"name":"no id"}`)}))

	_, ok := s.ReadProfile()
	require.False(t, ok)
}

// A degraded store (no backend) is total: reads report absent, writes and
// clears are silent no-ops.
func TestDegradedStoreIsTotal(t *testing.T) {
	s := &Store{}

	require.False(t, s.Available())
	require.NotPanics(t, func() {
		s.Write("tok123", testProfile())
		s.Clear()
	})

	_, ok := s.ReadToken()
	require.False(t, ok)
	_, ok = s.ReadProfile()
	require.False(t, ok)
}

func TestRewriteReplacesPair(t *testing.T) {
	s, _ := newTestStore(t)

	s.Write("tok123", testProfile())
	next := identity.Profile{ID: "u2", Name: "B", Email: "b@c.com", Role: "admin", OrgID: "org2"}
	s.Write("tok456", next)

	token, ok := s.ReadToken()
	require.True(t, ok)
	require.Equal(t, "tok456", token)

	p, ok := s.ReadProfile()
	require.True(t, ok)
	require.Equal(t, next, p)
}
