// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package identity defines the user profile model cached alongside the
// bearer credential. The profile is auxiliary display data: presence of the
// credential, not the profile, decides authentication status.
package identity

import (
	"encoding/json"
	"errors"
)

// Profile holds the read-only identity attributes of the current user,
// as returned inline by the login endpoint.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	OrgID string `json:"orgId"`
}

// ErrInvalidProfile indicates a profile payload that does not satisfy the
// minimal schema (a non-empty id).
var ErrInvalidProfile = errors.New("invalid profile payload")

// Validate checks the minimal schema. Only the id is mandatory; the
// remaining fields are display data and may be empty.
func (p Profile) Validate() error {
	if p.ID == "" {
		return ErrInvalidProfile
	}
	return nil
}

// Decode parses and validates a serialized profile. Malformed or
// schema-invalid data yields an error so callers can treat the stored
// value as absent instead of crashing the read.
func Decode(data []byte) (Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, err
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Encode serializes a profile for storage.
func Encode(p Profile) ([]byte, error) {
	return json.Marshal(p)
}
