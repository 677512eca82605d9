package routes

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-route-loader/internal/utils"
	"github.com/MKhiriev/go-route-loader/models"
)

// Builtin returns a registry with the handlers shipped in the routes/
// directory of this repository.
func Builtin(version string) *Registry {
	return NewRegistry().
		MustAdd("~version~GET.js", func(*http.Request) (any, error) {
			return map[string]string{"version": version}, nil
		}, Public()).
		MustAdd("~whoami~GET.js", whoami).
		MustAdd("~echo~POST.js", echo, AllowBypass()).
		MustAdd("~echo~:message~GET.js", func(r *http.Request) (any, error) {
			return map[string]string{"message": chi.URLParam(r, "message")}, nil
		}, Public())
}

func whoami(r *http.Request) (any, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return nil, &models.ErrorResponse{Code: http.StatusUnauthorized, Message: "no identity"}
	}
	return identity, nil
}

func echo(r *http.Request) (any, error) {
	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, &models.ErrorResponse{Code: http.StatusBadRequest, Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return models.Result{Status: http.StatusCreated, Body: body}, nil
}
