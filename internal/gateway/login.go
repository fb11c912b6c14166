// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"mailboard/cli/internal/apierr"
	"mailboard/cli/internal/identity"
)

// LoginResult is the outcome of a successful login: the issued credential and
// the profile returned inline with it. The caller is expected to pass both to
// session.Establish; Login itself never mutates any state.
type LoginResult struct {
	Token   string
	Profile identity.Profile
}

// Login calls POST /user/login with the given credentials. On success the
// server returns the bearer token together with the user profile. On failure
// a classified error is returned and nothing is persisted — login never
// partially succeeds.
func (g *Gateway) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if email == "" || password == "" {
		return LoginResult{}, apierr.New(apierr.ClientRequest, "email and password are required")
	}

	body := map[string]string{"email": email, "password": password}
	req, err := g.newRequest(ctx, http.MethodPost, g.endpoints.Login, body)
	if err != nil {
		return LoginResult{}, apierr.Wrap(apierr.ClientRequest, "invalid login request", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return LoginResult{}, apierr.FromTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serverMessage(resp.Body)
		// A 401 here means bad email/password, not a rejected bearer
		// credential: surface it as a form-level message.
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			if msg == "" {
				msg = "invalid email or password"
			}
			return LoginResult{}, &apierr.E{Kind: apierr.ClientRequest, Message: msg, Status: resp.StatusCode}
		}
		return LoginResult{}, apierr.FromStatus(resp.StatusCode, msg)
	}

	var envelope struct {
		Token string           `json:"token"`
		User  identity.Profile `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return LoginResult{}, apierr.Wrap(apierr.Server, "malformed login response", err)
	}
	if envelope.Token == "" {
		return LoginResult{}, apierr.New(apierr.Server, "login response missing token")
	}
	if err := envelope.User.Validate(); err != nil {
		return LoginResult{}, apierr.Wrap(apierr.Server, "login response missing user profile", err)
	}

	return LoginResult{Token: envelope.Token, Profile: envelope.User}, nil
}
