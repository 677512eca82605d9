package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/store"
)

type secretService struct {
	secrets store.SecretStore
	logger  *logger.Logger
}

func NewSecretService(secrets store.SecretStore, logger *logger.Logger) SecretService {
	return &secretService{secrets: secrets, logger: logger}
}

// SetSecret replaces the issuer's secret. Both issuer and value are required.
func (s *secretService) SetSecret(ctx context.Context, issuer, value string) error {
	log := logger.FromContext(ctx)

	if issuer == "" || value == "" {
		return fmt.Errorf("%w: issuer and value are required", ErrInvalidDataProvided)
	}

	if err := s.secrets.SetSecret(ctx, issuer, value); err != nil {
		log.Err(err).Str("issuer", issuer).Msg("error setting secret")
		return fmt.Errorf("error setting secret: %w", err)
	}

	log.Info().Str("issuer", issuer).Msg("secret updated")
	return nil
}
