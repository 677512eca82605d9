package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/store"
	"github.com/MKhiriev/go-route-loader/internal/utils"
	"github.com/MKhiriev/go-route-loader/models"
)

// DefaultTokenLifetimeDays is used when neither the request nor the
// configuration sets a lifetime.
const DefaultTokenLifetimeDays = 30

// tokenService is the concrete implementation of TokenService.
// Tokens are HS256 JWTs signed with the issuer's current secret, so rotating
// a secret invalidates every token issued under the previous one.
type tokenService struct {
	secrets store.SecretStore

	defaultIssuer   string
	defaultAudience string
	lifetimeDays    int

	now    func() time.Time
	logger *logger.Logger
}

// NewTokenService constructs a TokenService resolving secrets from secrets.
func NewTokenService(secrets store.SecretStore, cfg config.App, logger *logger.Logger) TokenService {
	lifetime := cfg.TokenLifetimeDays
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetimeDays
	}

	return &tokenService{
		secrets:         secrets,
		defaultIssuer:   cfg.DefaultIssuer,
		defaultAudience: cfg.DefaultAudience,
		lifetimeDays:    lifetime,
		now:             time.Now,
		logger:          logger,
	}
}

// Issue signs a token for req.
//
// Empty Issuer and Audience fall back to the configured defaults and a zero
// ExpiresInDays to the configured lifetime.
//
// Returns the issued key or:
//   - ErrInvalidDataProvided for a negative lifetime.
//   - ErrNoSecretForIssuer if the issuer has no secret (or none is named).
//   - A wrapped store or signing error.
func (t *tokenService) Issue(ctx context.Context, req models.IssueRequest) (models.IssuedKey, error) {
	log := logger.FromContext(ctx)

	issuer := req.Issuer
	if issuer == "" {
		issuer = t.defaultIssuer
	}
	audience := req.Audience
	if audience == "" {
		audience = t.defaultAudience
	}
	days := req.ExpiresInDays
	if days == 0 {
		days = t.lifetimeDays
	}
	if days < 0 {
		return models.IssuedKey{}, fmt.Errorf("%w: negative token lifetime", ErrInvalidDataProvided)
	}

	secret, err := t.secretFor(ctx, issuer)
	if err != nil {
		log.Err(err).Str("issuer", issuer).Msg("cannot issue token")
		return models.IssuedKey{}, err
	}

	now := t.now()
	expiresAt := now.AddDate(0, 0, days)

	claims := models.TokenClaims{
		Payload: req.Payload,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        utils.NewID(),
		},
	}
	if audience != "" {
		claims.Audience = jwt.ClaimStrings{audience}
	}

	token, err := utils.GenerateJWTToken(claims, secret.Value)
	if err != nil {
		return models.IssuedKey{}, fmt.Errorf("error signing token: %w", err)
	}

	log.Info().Str("issuer", issuer).Str("audience", audience).Time("expires_at", expiresAt).Msg("token issued")

	return models.IssuedKey{
		Token:     token,
		Issuer:    issuer,
		Audience:  audience,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Verify validates token against its issuer's current secret.
//
// Every failure, including an unknown issuer, is reported as ErrInvalidToken
// wrapping the cause.
func (t *tokenService) Verify(ctx context.Context, token string, opts VerifyOptions) (models.Identity, error) {
	issuer, err := utils.UnverifiedIssuer(token)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	secret, err := t.secretFor(ctx, issuer)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	audience := opts.Audience
	if audience == "" {
		audience = t.defaultAudience
	}

	parserOpts := []jwt.ParserOption{jwt.WithTimeFunc(t.now)}
	if opts.IgnoreExpiration {
		parserOpts = append(parserOpts, jwt.WithoutClaimsValidation())
	} else {
		parserOpts = append(parserOpts, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
		if audience != "" {
			parserOpts = append(parserOpts, jwt.WithAudience(audience))
		}
	}

	claims, err := utils.ValidateAndParseJWTToken(token, secret.Value, parserOpts...)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if opts.IgnoreExpiration {
		if err := checkIssuerAndAudience(claims, issuer, audience); err != nil {
			return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
	}

	return models.Identity{
		Issuer:  claims.Issuer,
		Subject: claims.Subject,
		Scheme:  models.AuthTypeBearer,
		Payload: claims.Payload,
	}, nil
}

// checkIssuerAndAudience repeats the claim checks that
// jwt.WithoutClaimsValidation switches off along with expiration.
func checkIssuerAndAudience(claims *models.TokenClaims, issuer, audience string) error {
	if claims.Issuer != issuer {
		return jwt.ErrTokenInvalidIssuer
	}
	if audience != "" && !slices.Contains(claims.Audience, audience) {
		return jwt.ErrTokenInvalidAudience
	}

	return nil
}

func (t *tokenService) secretFor(ctx context.Context, issuer string) (models.Secret, error) {
	if issuer == "" {
		return models.Secret{}, fmt.Errorf("%w: issuer is empty", ErrNoSecretForIssuer)
	}

	secret, ok, err := t.secrets.GetSecret(ctx, issuer)
	if err != nil {
		return models.Secret{}, fmt.Errorf("error resolving secret for %s: %w", issuer, err)
	}
	if !ok {
		return models.Secret{}, fmt.Errorf("%w: %s", ErrNoSecretForIssuer, issuer)
	}

	return secret, nil
}
