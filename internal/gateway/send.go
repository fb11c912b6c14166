// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"mailboard/cli/internal/apierr"
)

// Send performs an authenticated call. The stored credential is attached as
// "Authorization: Bearer <token>"; when no credential is present the call
// fails fast with Unauthenticated and no network request is issued.
//
// A 401/403 response yields Rejected and tears the local session down — but
// only when the stored credential still equals the one this request was
// dispatched with. A late response carrying a credential from a previous
// session is discarded without touching the store, so an in-flight call that
// straddles a logout or re-login cannot corrupt the newer session.
func (g *Gateway) Send(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	token, ok := g.session.Token()
	if !ok {
		return nil, apierr.New(apierr.Unauthenticated, "not logged in")
	}

	req, err := g.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, apierr.Wrap(apierr.ClientRequest, "invalid request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, apierr.FromTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		e := apierr.FromStatus(resp.StatusCode, serverMessage(resp.Body))
		if current, ok := g.session.Token(); ok && current == token {
			g.session.Terminate()
		} else if verboseGateway {
			fmt.Printf("[DEBUG] gateway: discarding stale rejection for %s\n", path)
		}
		return nil, e
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierr.FromStatus(resp.StatusCode, serverMessage(resp.Body))
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Wrap(apierr.Server, "unreadable response body", err)
	}
	if len(payload) > 0 && !json.Valid(payload) {
		return nil, apierr.New(apierr.Server, "malformed response payload")
	}
	return payload, nil
}
