// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AuthType is the scheme named in the "Authorization" header.
type AuthType string

const (
	AuthTypeBearer AuthType = "Bearer"
	AuthTypeSig    AuthType = "Sig"
	AuthTypeBypass AuthType = "Bypass"
)

// AuthParams is the per-request credential parsed from the "Authorization" header.
//
// Supported forms:
//
//	Authorization: Bearer <token>
//	Authorization: Sig <hmac> <timestamp> [issuer]
type AuthParams struct {
	// AuthType is the scheme, empty when no header was sent.
	AuthType AuthType

	// Key is the bearer token or the hex HMAC signature.
	Key string

	// Timestamp is milliseconds since epoch as a string. Only set for Sig.
	Timestamp string

	// Issuer optionally names the issuer whose secret signed a Sig credential.
	Issuer string
}

// ParseAuthParams splits a raw "Authorization" header value into AuthParams.
// An empty header yields zero AuthParams. Unknown schemes are kept as-is so
// that the resolver can reject them explicitly.
func ParseAuthParams(header string) AuthParams {
	parts := strings.Fields(header)
	if len(parts) == 0 {
		return AuthParams{}
	}

	params := AuthParams{AuthType: AuthType(parts[0])}
	if len(parts) > 1 {
		params.Key = parts[1]
	}
	if len(parts) > 2 {
		params.Timestamp = parts[2]
	}
	if len(parts) > 3 && params.AuthType == AuthTypeSig {
		params.Issuer = parts[3]
	}
	return params
}

// Header renders the params back into an "Authorization" header value.
func (p AuthParams) Header() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{string(p.AuthType), p.Key, p.Timestamp, p.Issuer} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// IsEmpty reports whether no credential was supplied.
func (p AuthParams) IsEmpty() bool {
	return p.AuthType == ""
}

// Identity is the principal carried forward to a handler once authentication
// has been resolved.
type Identity struct {
	// Issuer is the issuer whose secret verified the credential.
	Issuer string `json:"issuer,omitempty"`

	// Subject is the token subject, when present.
	Subject string `json:"subject,omitempty"`

	// Scheme is the scheme that produced this identity.
	Scheme AuthType `json:"scheme,omitempty"`

	// Bypassed is true when authentication was skipped.
	Bypassed bool `json:"bypassed,omitempty"`

	// Payload holds the caller-supplied token claims.
	Payload map[string]any `json:"payload,omitempty"`
}

// BypassIdentity is the synthetic identity handed to bypassed requests.
func BypassIdentity() Identity {
	return Identity{Issuer: "bypass", Scheme: AuthTypeBypass, Bypassed: true}
}
