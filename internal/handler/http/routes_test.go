package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-route-loader/internal/config"
	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/routes"
	"github.com/MKhiriev/go-route-loader/internal/service"
	"github.com/MKhiriev/go-route-loader/internal/store"
	"github.com/MKhiriev/go-route-loader/internal/utils"
	"github.com/MKhiriev/go-route-loader/models"
)

func decodeError(t *testing.T, body []byte) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestInit_Healthcheck(t *testing.T) {
	rr := newTestEnv(t).do(http.MethodGet, "/healthcheck", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "200", rr.Body.String())
}

func TestInit_CORSHeaders(t *testing.T) {
	rr := newTestEnv(t).do(http.MethodGet, "/users", "", "")

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, GET, PUT, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Origin, X-Requested-With, Content-Type, Accept, Authorization", rr.Header().Get("Access-Control-Allow-Headers"))
}

func TestInit_LiteralRouteWinsOverParameter(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodGet, "/users/me", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `"me"`, rr.Body.String())

	rr = env.do(http.MethodGet, "/users/42", sigAuth(testSecret), "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":"42","issuer":"acme"}`, rr.Body.String())
}

func TestInit_SyntheticHead(t *testing.T) {
	env := newTestEnv(t)

	get := env.do(http.MethodGet, "/users", "", "")
	require.Equal(t, http.StatusOK, get.Code)

	head := env.do(http.MethodHead, "/users", "", "")
	assert.Equal(t, http.StatusOK, head.Code)
	assert.Empty(t, head.Body.Bytes())
	assert.Equal(t, utils.ContentMD5(get.Body.Bytes()), head.Header().Get("X-Content-MD5"))
	assert.Equal(t, strconv.Itoa(get.Body.Len()), head.Header().Get("Content-Length"))
}

func TestInit_SyntheticHeadInheritsAuth(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodHead, "/users/1", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = env.do(http.MethodHead, "/users/1", sigAuth(testSecret), "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Content-MD5"))
}

func TestInit_SyntheticHeadPropagatesErrors(t *testing.T) {
	rr := newTestEnv(t).do(http.MethodHead, "/fail", "", "")

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Empty(t, rr.Header().Get("X-Content-MD5"))
}

func TestInit_SyntheticHeadNoContent(t *testing.T) {
	env := newTestEnv(t)

	get := env.do(http.MethodGet, "/empty", "", "")
	require.Equal(t, http.StatusNoContent, get.Code)
	require.Empty(t, get.Body.Bytes())

	head := env.do(http.MethodHead, "/empty", "", "")
	assert.Equal(t, http.StatusNoContent, head.Code)
	assert.Empty(t, head.Header().Get("Content-Length"))
	assert.Empty(t, head.Header().Get("X-Content-MD5"))
}

func TestInit_AuthoredOptionsIsPublic(t *testing.T) {
	env := newTestEnv(t)

	route, err := testRegistry().Resolve(models.RouteDescriptor{RawName: "~items~OPTIONS.js", Method: http.MethodOptions})
	require.NoError(t, err)
	require.True(t, route.Policy.Auth)

	rr := env.do(http.MethodOptions, "/items", "", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "PUT", rr.Header().Get("Allow"))

	rr = env.do(http.MethodOptions, "/items", "Garbage", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestInit_Options(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "synthetic", path: "/users", wantStatus: http.StatusOK, wantAllow: "GET, HEAD, POST"},
		{name: "synthetic with parameter", path: "/users/7", wantStatus: http.StatusOK, wantAllow: "GET, HEAD"},
		{name: "authored", path: "/items", wantStatus: http.StatusNoContent, wantAllow: "PUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(http.MethodOptions, tt.path, "", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Empty(t, rr.Body.String())
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}

func TestInit_Authentication(t *testing.T) {
	tests := []struct {
		name       string
		opts       []envOption
		method     string
		path       string
		auth       string
		wantStatus int
	}{
		{name: "no credentials", method: http.MethodGet, path: "/users/1", wantStatus: http.StatusUnauthorized},
		{name: "no credentials with global bypass", opts: []envOption{withGlobalBypass()}, method: http.MethodGet, path: "/users/1", wantStatus: http.StatusOK},
		{name: "no credentials on bypass route", method: http.MethodPost, path: "/users", wantStatus: http.StatusCreated},
		{name: "signature", method: http.MethodGet, path: "/users/1", auth: sigAuth(testSecret), wantStatus: http.StatusOK},
		{name: "signature with wrong secret", method: http.MethodGet, path: "/users/1", auth: sigAuth("nope"), wantStatus: http.StatusUnauthorized},
		{name: "sentinel", method: http.MethodGet, path: "/private", auth: "Bypass this shit", wantStatus: http.StatusOK},
		{name: "unsupported scheme", method: http.MethodGet, path: "/users/1", auth: "Basic dTpw", wantStatus: http.StatusUnauthorized},
		{name: "signature on private", method: http.MethodGet, path: "/private", auth: sigAuth(testSecret), wantStatus: http.StatusOK},
		{name: "public route ignores garbage", method: http.MethodGet, path: "/users", auth: "Garbage", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := newTestEnv(t, tt.opts...).do(tt.method, tt.path, tt.auth, "")

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, http.StatusUnauthorized, decodeError(t, rr.Body.Bytes()).Code)
			}
		})
	}
}

func TestInit_BearerTokens(t *testing.T) {
	env := newTestEnv(t)

	key, err := env.handler.services.TokenService.Issue(t.Context(), models.IssueRequest{Payload: map[string]any{"u": 1}})
	require.NoError(t, err)

	rr := env.do(http.MethodGet, "/users/5", "Bearer "+key.Token, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(http.MethodGet, "/private", "Bearer "+key.Token, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, decodeError(t, rr.Body.Bytes()).Message, service.ErrUnsupportedAuthType.Error())
}

func TestInit_ErrorResponder(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{path: "/fail", wantStatus: http.StatusTeapot, wantBody: `{"code":418,"message":"teapot"}`},
		{path: "/low", wantStatus: http.StatusInternalServerError, wantBody: `{"code":100,"message":"too low"}`},
		{path: "/crash", wantStatus: http.StatusInternalServerError, wantBody: `{"code":500,"message":"boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := env.do(http.MethodGet, tt.path, "", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestInit_MethodNotAllowed(t *testing.T) {
	rr := newTestEnv(t).do(http.MethodDelete, "/users", "", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET, HEAD, POST, OPTIONS", rr.Header().Get("Allow"))
	assert.Equal(t, http.StatusMethodNotAllowed, decodeError(t, rr.Body.Bytes()).Code)
}

func TestInit_NotFound(t *testing.T) {
	rr := newTestEnv(t).do(http.MethodGet, "/nowhere", "", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rr.Body.Bytes()).Code)
}

func TestInit_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := config.StructuredConfig{}
	services := service.NewServices(&store.Storages{SecretStore: store.NewMemorySecretStore()}, cfg, reg, logger.Nop())

	router, err := NewHandler(services, reg, cfg.Server, logger.Nop()).Init(testPlan(t), testRegistry())
	require.NoError(t, err)

	env := &testEnv{router: router}
	env.do(http.MethodGet, "/users/1", "", "")

	rr := env.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `route_loader_auth_results_total{result="rejected",scheme="none"} 1`)
}

func TestInit_MissingHandler(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, config.Server{}, logger.Nop())

	_, err := h.Init(testPlan(t), routes.NewRegistry())
	assert.ErrorIs(t, err, routes.ErrHandlerNotFound)
}

func TestRegister_LogsEveryBinding(t *testing.T) {
	buf := new(bytes.Buffer)
	h := NewHandler(&service.Services{}, nil, config.Server{}, logger.NewLoggerTo(buf, "test"))

	_, err := h.Init(testPlan(t), testRegistry())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "registering /users GET")
	assert.Contains(t, buf.String(), "registering /users HEAD")
	assert.Contains(t, buf.String(), "registering /users/:id OPTIONS")
}
