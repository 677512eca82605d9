package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-route-loader/models"
)

func TestAdmin_SetSecret(t *testing.T) {
	env := newTestEnv(t, withAdminRoutes())

	rr := env.do(http.MethodPut, "/auth/secrets/beta", sigAuth(testSecret), `{"value":"beta-secret"}`)
	require.Equal(t, http.StatusNoContent, rr.Code, rr.Body.String())

	secret, ok, err := env.secrets.GetSecret(t.Context(), "beta")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "beta-secret", secret.Value)

	// the new issuer can sign requests right away
	rr = env.do(http.MethodGet, "/users/1", sigAuth("beta-secret")+" beta", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAdmin_SetSecretErrors(t *testing.T) {
	tests := []struct {
		name       string
		opts       []envOption
		auth       string
		body       string
		wantStatus int
	}{
		{name: "no credentials", auth: "", body: `{"value":"x"}`, wantStatus: http.StatusUnauthorized},
		{name: "bypass sentinel", auth: "Bypass this shit", body: `{"value":"x"}`, wantStatus: http.StatusNoContent},
		{name: "empty value", auth: sigAuth(testSecret), body: `{"value":""}`, wantStatus: http.StatusBadRequest},
		{name: "invalid JSON", auth: sigAuth(testSecret), body: `{"value":`, wantStatus: http.StatusBadRequest},
		{
			name:       "body over limit",
			opts:       []envOption{withBodyLimit(16)},
			auth:       sigAuth(testSecret),
			body:       `{"value":"` + strings.Repeat("x", 64) + `"}`,
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, append([]envOption{withAdminRoutes()}, tt.opts...)...)

			rr := env.do(http.MethodPut, "/auth/secrets/beta", tt.auth, tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestAdmin_IssueKey(t *testing.T) {
	env := newTestEnv(t, withAdminRoutes())

	rr := env.do(http.MethodPost, "/auth/keys", sigAuth(testSecret), `{"payload":{"u":1},"audience":"users","expires_in_days":2}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var key models.IssuedKey
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &key))
	assert.Equal(t, "acme", key.Issuer)
	assert.Equal(t, "users", key.Audience)

	rr = env.do(http.MethodGet, "/users/9", "Bearer "+key.Token, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(http.MethodPost, "/auth/keys", sigAuth(testSecret), `{"issuer":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = env.do(http.MethodPost, "/auth/keys", "Bearer "+key.Token, `{}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdmin_DisabledByDefault(t *testing.T) {
	rr := newTestEnv(t).do(http.MethodPost, "/auth/keys", sigAuth(testSecret), `{}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
