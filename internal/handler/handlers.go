package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/handler/http"
	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, gatherer prometheus.Gatherer, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, gatherer, cfg, logger)}, nil
}
