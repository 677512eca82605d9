// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/store"
	"github.com/MKhiriev/go-route-loader/internal/utils"
	"github.com/MKhiriev/go-route-loader/models"
)

// The sentinel credential "Bypass this shit" is accepted without any secret
// when sentinel bypass is enabled. Internal tooling depends on it.
const (
	sentinelKey       = "this"
	sentinelTimestamp = "shit"
)

// authResolver is the concrete implementation of AuthResolver.
//
// Transitions:
//   - no header: bypass flag (options, context or global switch) → bypass
//     identity, otherwise ErrUnauthenticated;
//   - sentinel credential → bypass identity;
//   - Sig → signature verification against the issuer's secret;
//   - Bearer → token verification, ErrUnsupportedAuthType on private resources;
//   - anything else → ErrUnsupportedAuthType.
type authResolver struct {
	secrets    store.SecretStore
	signatures SignatureService
	tokens     TokenService

	globalBypass   bool
	sentinelBypass bool
	defaultIssuer  string

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthResolver wires the resolver to its collaborators. The bypass
// switches and the default issuer come from cfg.
func NewAuthResolver(secrets store.SecretStore, signatures SignatureService, tokens TokenService, cfg config.App, logger *logger.Logger) AuthResolver {
	return &authResolver{
		secrets:        secrets,
		signatures:     signatures,
		tokens:         tokens,
		globalBypass:   cfg.AuthBypass,
		sentinelBypass: cfg.SentinelBypassEnabled(),
		defaultIssuer:  cfg.DefaultIssuer,
		now:            time.Now,
		logger:         logger,
	}
}

func (r *authResolver) Resolve(ctx context.Context, header string, opts ResolveOptions) (models.Identity, error) {
	if err := ctx.Err(); err != nil {
		return models.Identity{}, err
	}

	params := models.ParseAuthParams(header)

	switch params.AuthType {
	case "":
		if opts.Bypass || r.globalBypass || utils.IsAuthBypassed(ctx) {
			return models.BypassIdentity(), nil
		}
		return models.Identity{}, ErrUnauthenticated

	case models.AuthTypeBypass:
		if r.sentinelBypass && params.Key == sentinelKey && params.Timestamp == sentinelTimestamp {
			return models.BypassIdentity(), nil
		}
		return models.Identity{}, ErrUnsupportedAuthType

	case models.AuthTypeSig:
		return r.resolveSignature(ctx, params)

	case models.AuthTypeBearer:
		if opts.Private {
			return models.Identity{}, fmt.Errorf("%w: private resources accept signatures only", ErrUnsupportedAuthType)
		}
		return r.tokens.Verify(ctx, params.Key, VerifyOptions{Audience: opts.Audience})

	default:
		return models.Identity{}, fmt.Errorf("%w: %s", ErrUnsupportedAuthType, params.AuthType)
	}
}

func (r *authResolver) resolveSignature(ctx context.Context, params models.AuthParams) (models.Identity, error) {
	issuer := params.Issuer
	if issuer == "" {
		issuer = r.defaultIssuer
	}
	if issuer == "" {
		return models.Identity{}, fmt.Errorf("%w: signature names no issuer", ErrUnauthenticated)
	}

	secret, ok, err := r.secrets.GetSecret(ctx, issuer)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("issuer", issuer).Msg("secret lookup failed")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if !ok {
		return models.Identity{}, fmt.Errorf("%w: %w: %s", ErrUnauthenticated, ErrNoSecretForIssuer, issuer)
	}

	return r.signatures.Verify(ctx, params, secret, r.now())
}
