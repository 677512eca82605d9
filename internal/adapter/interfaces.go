// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the route server.
//
// [RouteClient] performs requests against a running server and signs each
// of them, either with a fresh "Sig" credential computed from an issuer
// secret or with a bearer token. Non-2xx responses are mapped to the
// sentinel errors in errors.go so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-route-loader/models"
)

// RouteClient talks to a route server over HTTP.
type RouteClient interface {
	// Call performs method on path with an optional JSON body. The response
	// is returned even when its status maps to an error.
	Call(ctx context.Context, method, path string, body any) (*Response, error)

	// SetSecret replaces the secret of issuer through the admin routes.
	SetSecret(ctx context.Context, issuer, value string) error

	// IssueKey asks the server to issue a bearer token.
	IssueKey(ctx context.Context, req models.IssueRequest) (models.IssuedKey, error)

	// Health checks /healthcheck.
	Health(ctx context.Context) error
}
