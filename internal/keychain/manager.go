// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for mailboard.
// This module manages all interactions with the OS keychain/credential store,
// providing a unified interface for storing and retrieving the bearer token and
// the cached user profile.
//
// The package supports macOS Keychain (via the security command or the keyring
// library), Windows Credential Manager, and Secret Service / encrypted file
// backends on other platforms. Operations are thread-safe; a single Save or
// Clear updates both credential entries under one lock so observers never see
// a half-written pair.
package keychain

import (
	"runtime"
	"sync"

	"github.com/99designs/keyring"

	"mailboard/cli/internal/xdg"
)

// ServiceName identifies mailboard entries in the OS credential store.
const ServiceName = "mailboard"

// Well-known entry keys. The raw token string and the JSON-serialized
// profile live under a fixed pair of keys.
const (
	KeyToken   = "auth_token"
	KeyProfile = "auth_profile"
)

var (
	mu            sync.Mutex
	globalManager *Manager
	globalError   error
)

// Manager performs credential store operations against either the native
// macOS security backend or the keyring library.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend *securityBackend
}

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	// Try native security backend first on macOS
	if runtime.GOOS == "darwin" {
		backend, err := newSecurityBackend()
		if err == nil {
			return &Manager{backend: backend}, nil
		}
		// Fall through to keyring library if security command fails
	}

	ring, err := openRing()
	if err != nil {
		return nil, err
	}

	return &Manager{ring: ring}, nil
}

// NewRingManager wraps an existing keyring. Used by tests with an in-memory ring.
func NewRingManager(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		globalManager = nil
		return nil, globalError
	}

	return globalManager, nil
}

// openRing opens the OS keyring. Native platform backends are preferred;
// on other systems the Secret Service, pass, or an encrypted file under the
// XDG state dir is used so the CLI stays functional on headless Linux.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.PassBackend,
		}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	default:
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		}
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
	}

	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	if stateDir, err := xdg.StateDir(); err == nil {
		cfg.FileDir = stateDir
		cfg.FilePasswordFunc = keyring.FixedStringPrompt(ServiceName)
	}

	return keyring.Open(cfg)
}

// SaveCredential stores the token and serialized profile as a pair.
// This method is thread-safe.
func (m *Manager) SaveCredential(token string, profile []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		if err := m.backend.Set(KeyToken, token); err != nil {
			return err
		}
		return m.backend.Set(KeyProfile, string(profile))
	}

	if err := m.ring.Set(keyring.Item{Key: KeyToken, Data: []byte(token)}); err != nil {
		return err
	}
	return m.ring.Set(keyring.Item{Key: KeyProfile, Data: profile})
}

// LoadToken retrieves the raw token string. A missing or empty entry
// yields an empty string with no error.
// This method is thread-safe.
func (m *Manager) LoadToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		return m.backend.Get(KeyToken)
	}

	it, err := m.ring.Get(KeyToken)
	if err != nil {
		if err == keyring.ErrKeyNotFound {
			return "", nil
		}
		return "", err
	}
	return string(it.Data), nil
}

// LoadProfile retrieves the serialized profile. A missing entry yields
// nil data with no error.
// This method is thread-safe.
func (m *Manager) LoadProfile() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		data, err := m.backend.Get(KeyProfile)
		if err != nil {
			return nil, err
		}
		return []byte(data), nil
	}

	it, err := m.ring.Get(KeyProfile)
	if err != nil {
		if err == keyring.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}
	return it.Data, nil
}

// ClearCredential removes both credential entries.
// This method is thread-safe.
func (m *Manager) ClearCredential() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		_ = m.backend.Delete(KeyToken)
		_ = m.backend.Delete(KeyProfile)
		return nil
	}

	_ = m.ring.Remove(KeyToken)
	_ = m.ring.Remove(KeyProfile)
	return nil
}
