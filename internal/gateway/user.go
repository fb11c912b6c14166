// Copyright (c) 2025 Mailboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"mailboard/cli/internal/apierr"
	"mailboard/cli/internal/identity"
)

// Profile calls GET /user/:id to re-fetch the profile of the given user.
// Login already returns the profile inline; this is a refresh path for
// picking up server-side profile changes without re-authenticating.
func (g *Gateway) Profile(ctx context.Context, id string) (identity.Profile, error) {
	if strings.TrimSpace(id) == "" {
		return identity.Profile{}, apierr.New(apierr.ClientRequest, "user id is required")
	}

	payload, err := g.Send(ctx, http.MethodGet, g.endpoints.User+"/"+id, nil)
	if err != nil {
		return identity.Profile{}, err
	}

	var p identity.Profile
	if err := json.Unmarshal(payload, &p); err != nil {
		return identity.Profile{}, apierr.Wrap(apierr.Server, "malformed profile response", err)
	}
	if err := p.Validate(); err != nil {
		return identity.Profile{}, apierr.Wrap(apierr.Server, "incomplete profile response", err)
	}
	return p, nil
}

// SendCustomEmail calls POST /email/send-custom through the authenticated
// send path. Missing fields fail locally as ClientRequest without any
// network I/O.
func (g *Gateway) SendCustomEmail(ctx context.Context, to, subject, message string) error {
	if strings.TrimSpace(to) == "" {
		return apierr.New(apierr.ClientRequest, "recipient is required")
	}
	if strings.TrimSpace(subject) == "" {
		return apierr.New(apierr.ClientRequest, "subject is required")
	}
	if strings.TrimSpace(message) == "" {
		return apierr.New(apierr.ClientRequest, "message is required")
	}

	body := map[string]string{"to": to, "subject": subject, "message": message}
	_, err := g.Send(ctx, http.MethodPost, g.endpoints.SendEmail, body)
	return err
}
