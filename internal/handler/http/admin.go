package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/utils"
	"github.com/MKhiriev/go-route-loader/models"
)

func (h *Handler) healthcheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, http.StatusOK)
}

// setSecret handles PUT /auth/secrets/{issuer}.
func (h *Handler) setSecret(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SetSecretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	issuer := chi.URLParam(r, "issuer")
	if err := h.services.SecretService.SetSecret(r.Context(), issuer, req.Value); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("issuer", issuer).Msg("secret set through admin route")
	w.WriteHeader(http.StatusNoContent)
}

// issueKey handles POST /auth/keys.
func (h *Handler) issueKey(w http.ResponseWriter, r *http.Request) {
	var req models.IssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	key, err := h.services.TokenService.Issue(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, key, http.StatusCreated)
}
