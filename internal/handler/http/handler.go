package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/service"
)

type Handler struct {
	services *service.Services
	gatherer prometheus.Gatherer
	cfg      config.Server

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. /metrics is served from gatherer
// when it is non-nil.
func NewHandler(services *service.Services, gatherer prometheus.Gatherer, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		gatherer: gatherer,
		cfg:      cfg,
		logger:   logger,
	}
}
