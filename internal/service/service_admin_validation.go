package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-route-loader/internal/validators"
	"github.com/MKhiriev/go-route-loader/models"
)

// SecretValidationService checks issuer and value before a secret is stored.
type SecretValidationService struct {
	inner     SecretService
	validator validators.Validator
}

func NewSecretValidationService() *SecretValidationService {
	return &SecretValidationService{validator: validators.NewAdminValidator()}
}

func (v *SecretValidationService) SetSecret(ctx context.Context, issuer, value string) error {
	if err := v.validator.Validate(ctx, models.Secret{Issuer: issuer, Value: value}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SetSecret(ctx, issuer, value)
}

func (v *SecretValidationService) Wrap(inner SecretService) SecretService {
	v.inner = inner
	return v
}

// TokenValidationService checks issuance requests. Verification is passed
// through untouched.
type TokenValidationService struct {
	inner     TokenService
	validator validators.Validator
}

func NewTokenValidationService() *TokenValidationService {
	return &TokenValidationService{validator: validators.NewAdminValidator()}
}

func (v *TokenValidationService) Issue(ctx context.Context, req models.IssueRequest) (models.IssuedKey, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.IssuedKey{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Issue(ctx, req)
}

func (v *TokenValidationService) Verify(ctx context.Context, token string, opts VerifyOptions) (models.Identity, error) {
	return v.inner.Verify(ctx, token, opts)
}

func (v *TokenValidationService) Wrap(inner TokenService) TokenService {
	v.inner = inner
	return v
}
