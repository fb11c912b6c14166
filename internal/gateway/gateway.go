// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package gateway performs outbound calls to the Mailboard identity/API
// server.
//
// The gateway attaches the stored bearer credential to authenticated calls
// and normalizes success and failure into classified results (see
// internal/apierr). It performs no retries and no token refresh: a rejected
// credential surfaces as a Rejected error and tears the local session down,
// so a stale session can never silently mask itself as a transient failure.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"mailboard/cli/internal/config"
	"mailboard/cli/internal/logging"
	"mailboard/cli/internal/session"
)

var verboseGateway = os.Getenv("MAILBOARD_VERBOSE") == "1"

// Gateway is the HTTP client for the Mailboard API.
type Gateway struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://api.mailboard.app")
	baseURL string
	// endpoints contains the URL paths for the consumed API endpoints
	endpoints config.Endpoints
	// session supplies the credential and absorbs rejected-credential teardown
	session *session.Session
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// New creates a gateway for the given base URL and endpoint paths.
// It configures a 10-second timeout for all requests.
func New(baseURL string, endpoints config.Endpoints, sess *session.Session) *Gateway {
	return &Gateway{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		session:   sess,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// newRequest builds a JSON request with standard headers. A nil body sends
// no payload.
func (g *Gateway) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json, */*")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if verboseGateway {
		fmt.Printf("[DEBUG] gateway: %s %s request-id=%s\n",
			method, logging.Mask(g.baseURL+path), req.Header.Get("X-Request-Id"))
	}
	return req, nil
}

// serverMessage extracts a human-readable message from an error payload.
// JSON envelopes with "error" or "message" fields are preferred; otherwise
// the trimmed body text is used.
func serverMessage(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(b) == 0 {
		return ""
	}
	var envelope map[string]any
	if err := json.Unmarshal(b, &envelope); err == nil {
		for _, key := range []string{"error", "message"} {
			if v, ok := envelope[key].(string); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
		return ""
	}
	return strings.TrimSpace(string(b))
}
