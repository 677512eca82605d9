package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/routes"
	"github.com/MKhiriev/go-route-loader/internal/service"
	"github.com/MKhiriev/go-route-loader/internal/store"
	"github.com/MKhiriev/go-route-loader/internal/utils"
	"github.com/MKhiriev/go-route-loader/models"
)

const testSecret = "acme-secret"

var testRouteFiles = []string{
	"README.md",
	"helper.js",
	"~users~GET.js",
	"~users~POST.js",
	"~users~me~GET.js",
	"~users~:id~GET.js",
	"~items~OPTIONS.js",
	"~items~PUT.js",
	"~private~GET.js",
	"~fail~GET.js",
	"~low~GET.js",
	"~crash~GET.js",
	"~empty~GET.js",
}

func testRegistry() *routes.Registry {
	return routes.NewRegistry().
		MustAdd("~users~GET.js", func(*http.Request) (any, error) {
			return []string{"ann", "bob"}, nil
		}, routes.Public()).
		MustAdd("~users~POST.js", func(r *http.Request) (any, error) {
			body, _ := io.ReadAll(r.Body)
			return models.Result{Status: http.StatusCreated, Body: map[string]string{"created": string(body)}}, nil
		}, routes.AllowBypass()).
		MustAdd("~users~me~GET.js", func(*http.Request) (any, error) {
			return "me", nil
		}, routes.Public()).
		MustAdd("~users~:id~GET.js", func(r *http.Request) (any, error) {
			identity, _ := utils.GetIdentityFromContext(r.Context())
			return map[string]any{"id": chi.URLParam(r, "id"), "issuer": identity.Issuer}, nil
		}).
		MustAdd("~items~OPTIONS.js", func(*http.Request) (any, error) {
			return models.Result{Status: http.StatusNoContent}, nil
		}).
		MustAdd("~items~PUT.js", func(*http.Request) (any, error) {
			return "put", nil
		}, routes.Public()).
		MustAdd("~private~GET.js", func(*http.Request) (any, error) {
			return "secret stuff", nil
		}, routes.Private()).
		MustAdd("~fail~GET.js", func(*http.Request) (any, error) {
			return nil, &models.ErrorResponse{Code: http.StatusTeapot, Message: "teapot"}
		}, routes.Public()).
		MustAdd("~low~GET.js", func(*http.Request) (any, error) {
			return nil, &models.ErrorResponse{Code: 100, Message: "too low"}
		}, routes.Public()).
		MustAdd("~crash~GET.js", func(*http.Request) (any, error) {
			return nil, errors.New("boom")
		}, routes.Public()).
		MustAdd("~empty~GET.js", func(*http.Request) (any, error) {
			return models.Result{Status: http.StatusNoContent}, nil
		}, routes.Public())
}

func testPlan(t *testing.T) []models.RouteDescriptor {
	t.Helper()

	fsys := fstest.MapFS{}
	for _, name := range testRouteFiles {
		fsys["api/"+name] = &fstest.MapFile{Data: []byte("// route")}
	}

	plan, err := routes.Load(fsys, "api", ".js")
	require.NoError(t, err)
	return plan
}

type testEnv struct {
	handler *Handler
	secrets *store.MemorySecretStore
	router  *chi.Mux
}

type envOption func(*config.StructuredConfig)

func withGlobalBypass() envOption {
	return func(c *config.StructuredConfig) { c.App.AuthBypass = true }
}

func withAdminRoutes() envOption {
	return func(c *config.StructuredConfig) { c.Server.AdminRoutes = true }
}

func withBodyLimit(limit int64) envOption {
	return func(c *config.StructuredConfig) { c.Server.BodyLimit = limit }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{DefaultIssuer: "acme", DefaultAudience: "users"},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	secrets := store.NewMemorySecretStore()
	require.NoError(t, secrets.SetSecret(context.Background(), "acme", testSecret))

	services := service.NewServices(&store.Storages{SecretStore: secrets}, cfg, nil, logger.Nop())
	h := NewHandler(services, prometheus.NewRegistry(), cfg.Server, logger.Nop())

	router, err := h.Init(testPlan(t), testRegistry())
	require.NoError(t, err)

	return &testEnv{handler: h, secrets: secrets, router: router}
}

func (e *testEnv) do(method, target, auth string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func sigAuth(secret string) string {
	return service.Sign(secret, time.Now()).Header()
}
