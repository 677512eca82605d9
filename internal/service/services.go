package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/store"
)

type Services struct {
	SignatureService SignatureService
	TokenService     TokenService
	SecretService    SecretService
	AuthResolver     AuthResolver
}

// NewServices builds the services over storages. Admin inputs are validated
// before they reach the token and secret services; resolver outcomes are
// counted in reg when it is non-nil.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, reg prometheus.Registerer, logger *logger.Logger) *Services {
	signatures := NewSignatureService(cfg.App, logger)
	tokens := NewTokenValidationService().Wrap(NewTokenService(storages.SecretStore, cfg.App, logger))

	resolver := NewAuthResolver(storages.SecretStore, signatures, tokens, cfg.App, logger)
	if reg != nil {
		resolver = NewAuthResolverMetrics(reg).Wrap(resolver)
	}

	return &Services{
		SignatureService: signatures,
		TokenService:     tokens,
		SecretService:    NewSecretValidationService().Wrap(NewSecretService(storages.SecretStore, logger)),
		AuthResolver:     resolver,
	}
}
