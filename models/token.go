// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueRequest describes a token to be issued for an issuer/audience pair.
type IssueRequest struct {
	// Payload is an opaque claims mapping embedded in the token.
	Payload map[string]any `json:"payload"`

	// Issuer names the secret used to sign the token.
	Issuer string `json:"issuer"`

	// Audience is bound into the "aud" claim.
	Audience string `json:"audience"`

	// ExpiresInDays is the token lifetime. Zero means the configured default.
	ExpiresInDays int `json:"expires_in_days"`
}

// IssuedKey is the result of a successful issuance.
type IssuedKey struct {
	Token     string    `json:"token"`
	Issuer    string    `json:"issuer"`
	Audience  string    `json:"audience"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenClaims is the claim set carried by issued tokens: the standard
// registered claims plus the caller payload under "payload".
type TokenClaims struct {
	Payload map[string]any `json:"payload,omitempty"`
	jwt.RegisteredClaims
}
