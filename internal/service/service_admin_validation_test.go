package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/validators"
	"github.com/MKhiriev/go-route-loader/models"
)

func TestSecretValidationService(t *testing.T) {
	secrets := newSecretStore(t, nil)
	svc := NewSecretValidationService().Wrap(NewSecretService(secrets, logger.Nop()))
	ctx := context.Background()

	tests := []struct {
		name   string
		issuer string
		value  string
		want   error
	}{
		{name: "stored", issuer: "acme", value: "s1"},
		{name: "issuer with space", issuer: "ac me", value: "s1", want: validators.ErrInvalidIssuer},
		{name: "empty value", issuer: "acme", want: validators.ErrEmptySecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SetSecret(ctx, tt.issuer, tt.value)
			if tt.want == nil {
				require.NoError(t, err)
				_, ok, err := secrets.GetSecret(ctx, tt.issuer)
				require.NoError(t, err)
				assert.True(t, ok)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, ok, err := secrets.GetSecret(ctx, "ac me")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenValidationService(t *testing.T) {
	secrets := newSecretStore(t, map[string]string{"acme": "s1"})
	cfg := config.App{DefaultIssuer: "acme", DefaultAudience: "users", TokenLifetimeDays: 1}
	svc := NewTokenValidationService().Wrap(NewTokenService(secrets, cfg, logger.Nop()))
	ctx := context.Background()

	_, err := svc.Issue(ctx, models.IssueRequest{ExpiresInDays: 10_000})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidLifetime)

	_, err = svc.Issue(ctx, models.IssueRequest{Issuer: "a b"})
	assert.ErrorIs(t, err, validators.ErrInvalidIssuer)

	key, err := svc.Issue(ctx, models.IssueRequest{Payload: map[string]any{"u": "1"}})
	require.NoError(t, err)

	identity, err := svc.Verify(ctx, key.Token, VerifyOptions{})
	require.NoError(t, err)
	assert.Equal(t, "acme", identity.Issuer)
}
