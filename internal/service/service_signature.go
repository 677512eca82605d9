// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/utils"
	"github.com/MKhiriev/go-route-loader/models"
)

// DefaultSignatureWindow is how old a signed timestamp may be.
const DefaultSignatureWindow = 60 * time.Second

// signatureService is the concrete implementation of SignatureService.
// A signature is hex(HMAC_SHA256(secret, secret + timestamp)) where the
// timestamp is milliseconds since epoch.
type signatureService struct {
	// window is the maximum age of a timestamp. Timestamps in the future
	// are accepted.
	window time.Duration

	logger *logger.Logger
}

// NewSignatureService constructs a SignatureService using cfg.SignatureWindow,
// or [DefaultSignatureWindow] when it is not set.
func NewSignatureService(cfg config.App, logger *logger.Logger) SignatureService {
	window := cfg.SignatureWindow
	if window <= 0 {
		window = DefaultSignatureWindow
	}

	return &signatureService{
		window: window,
		logger: logger,
	}
}

// Sign computes the credential for secret at now.
func Sign(secret string, now time.Time) models.AuthParams {
	timestamp := strconv.FormatInt(now.UnixMilli(), 10)

	return models.AuthParams{
		AuthType:  models.AuthTypeSig,
		Key:       utils.HashString(secret+timestamp, secret),
		Timestamp: timestamp,
	}
}

func (s *signatureService) Sign(secret string, now time.Time) models.AuthParams {
	return Sign(secret, now)
}

// Verify checks a "Sig" credential against secret.
//
// Returns an identity for secret.Issuer or:
//   - ErrUnauthenticated if the scheme is not Sig or the timestamp is missing,
//     not a number or negative.
//   - ErrExpired if the timestamp is older than the window.
//   - ErrSignatureMismatch if the HMAC does not match (constant-time compare).
func (s *signatureService) Verify(ctx context.Context, params models.AuthParams, secret models.Secret, now time.Time) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if params.AuthType != models.AuthTypeSig || params.Timestamp == "" {
		return models.Identity{}, ErrUnauthenticated
	}

	timestamp, err := strconv.ParseInt(params.Timestamp, 10, 64)
	if err != nil || timestamp < 0 {
		log.Debug().Str("timestamp", params.Timestamp).Msg("signature timestamp is not a valid number")
		return models.Identity{}, ErrUnauthenticated
	}

	if timestamp < now.UnixMilli()-s.window.Milliseconds() {
		log.Debug().
			Str("issuer", secret.Issuer).
			Int64("age_ms", now.UnixMilli()-timestamp).
			Msg("signature expired")
		return models.Identity{}, ErrExpired
	}

	expected := utils.HashString(secret.Value+params.Timestamp, secret.Value)
	if !utils.EqualHash(expected, params.Key) {
		log.Debug().Str("issuer", secret.Issuer).Msg("signature mismatch")
		return models.Identity{}, ErrSignatureMismatch
	}

	return models.Identity{
		Issuer:  secret.Issuer,
		Subject: secret.Issuer,
		Scheme:  models.AuthTypeSig,
	}, nil
}
