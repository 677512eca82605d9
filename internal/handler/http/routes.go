package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-route-loader/internal/routes"
	"github.com/MKhiriev/go-route-loader/models"
)

// Init builds the router: built-in endpoints first, then the route plan
// in the given order.
func (h *Handler) Init(plan []models.RouteDescriptor, registry *routes.Registry) (*chi.Mux, error) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withCORS)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	if h.cfg.BodyLimit > 0 {
		router.Use(middleware.RequestSize(h.cfg.BodyLimit))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/healthcheck", h.healthcheck)
		if h.gatherer != nil {
			r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
		}
	})

	// secret and key management, signatures only
	if h.cfg.AdminRoutes {
		router.Group(func(r chi.Router) {
			r.Use(h.authenticate(routes.Policy{Auth: true, Private: true}))
			r.Put("/auth/secrets/{issuer}", h.setSecret)
			r.Post("/auth/keys", h.issueKey)
		})
	}

	if err := h.Register(router, plan, registry); err != nil {
		return nil, err
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router, nil
}
