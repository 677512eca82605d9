package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-route-loader/models"
)

// SignatureService signs and verifies "Sig" credentials.
type SignatureService interface {
	Sign(secret string, now time.Time) models.AuthParams
	Verify(ctx context.Context, params models.AuthParams, secret models.Secret, now time.Time) (models.Identity, error)
}

// TokenService issues and verifies bearer tokens bound to an issuer and an
// audience.
type TokenService interface {
	Issue(ctx context.Context, req models.IssueRequest) (models.IssuedKey, error)
	Verify(ctx context.Context, token string, opts VerifyOptions) (models.Identity, error)
}

// SecretService manages issuer secrets on behalf of the admin routes.
type SecretService interface {
	SetSecret(ctx context.Context, issuer, value string) error
}

// AuthResolver turns a raw "Authorization" header into an identity.
type AuthResolver interface {
	Resolve(ctx context.Context, header string, opts ResolveOptions) (models.Identity, error)
}

// AuthResolverWrapper defines middleware composition for AuthResolver.
// Implementations wrap an existing AuthResolver to add behavior such as
// metrics or logging.
type AuthResolverWrapper interface {
	Wrap(AuthResolver) AuthResolver // returns a decorated AuthResolver applying additional behavior
}

// VerifyOptions tunes token verification.
type VerifyOptions struct {
	// Audience overrides the configured default audience.
	Audience string

	// IgnoreExpiration accepts tokens past their "exp".
	IgnoreExpiration bool
}

// ResolveOptions describes the resource a request targets.
type ResolveOptions struct {
	// Private resources accept signature credentials only.
	Private bool

	// Bypass lets a request without credentials through.
	Bypass bool

	// Audience is the expected token audience, empty for the default.
	Audience string
}
