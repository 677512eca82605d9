// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, JWT token generation and validation,
// and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-route-loader/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// IdentityCtxKey is the key under which the resolved [models.Identity]
	// is stored once authentication succeeds.
	IdentityCtxKey = contextKey("identity")

	// AuthBypassCtxKey marks a context whose requests skip authentication.
	// It is set by trusted in-process callers, never from request data.
	AuthBypassCtxKey = contextKey("authBypass")
)

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the identity stored by the auth middleware.
//
// Returns the identity and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing (route without authentication)
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}

// WithAuthBypass flags ctx so that requests carrying no credentials are
// accepted with the bypass identity.
func WithAuthBypass(ctx context.Context) context.Context {
	return context.WithValue(ctx, AuthBypassCtxKey, true)
}

// IsAuthBypassed reports whether ctx was flagged by [WithAuthBypass].
func IsAuthBypassed(ctx context.Context) bool {
	bypass, _ := ctx.Value(AuthBypassCtxKey).(bool)
	return bypass
}
