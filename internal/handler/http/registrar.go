// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/routes"
	"github.com/MKhiriev/go-route-loader/internal/utils"
	"github.com/MKhiriev/go-route-loader/models"
)

// contentMD5Header carries the checksum of the body a GET would have sent.
const contentMD5Header = "X-Content-MD5"

// Register binds plan to router in order.
//
// Real entries are served by the registry handler they resolve to. A
// synthetic HEAD runs the handler of the GET registered before it and
// answers with headers only. A synthetic OPTIONS answers 200 with the
// allowed verbs in "Allow" and "Access-Control-Allow-Methods".
//
// OPTIONS is always public: an authored OPTIONS handler runs without the
// auth resolver whatever policy its registry entry carries, so browser
// preflights never see a 401.
//
// A real entry without a handler stops registration with
// [routes.ErrHandlerNotFound].
func (h *Handler) Register(router chi.Router, plan []models.RouteDescriptor, registry *routes.Registry) error {
	gets := make(map[string]routes.Handler)

	for _, desc := range plan {
		h.logger.Info().Str("func", "*Handler.Register").Msgf("registering %s %s", desc.Path(), desc.Method)

		switch {
		case desc.IsSynthetic && desc.Method == http.MethodOptions:
			router.Method(desc.Method, desc.Pattern(), preflight(desc.AllowedMethods))

		case desc.IsSynthetic && desc.Method == http.MethodHead:
			get, ok := gets[desc.Shape()]
			if !ok {
				return fmt.Errorf("%w: no GET registered before HEAD %s", routes.ErrHandlerNotFound, desc.Path())
			}
			router.Method(desc.Method, desc.Pattern(), h.authenticate(get.Policy)(h.head(get)))

		default:
			route, err := registry.Resolve(desc)
			if err != nil {
				return err
			}

			var next http.Handler
			if desc.Method == http.MethodOptions {
				next = withAllow(desc.AllowedMethods, h.serve(route))
			} else {
				next = h.authenticate(route.Policy)(h.serve(route))
			}
			router.Method(desc.Method, desc.Pattern(), next)

			if desc.Method == http.MethodGet {
				gets[desc.Shape()] = route
			}
		}
	}

	return nil
}

func (h *Handler) serve(route routes.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := route.Func(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		status, body := unwrapResult(result)
		if status == http.StatusNoContent {
			w.WriteHeader(status)
			return
		}

		if _, err := utils.WriteJSON(w, body, status); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.serve").Str("handler", route.Name).Msg("error writing response")
		}
	})
}

// head answers with the headers route would have produced for a GET.
func (h *Handler) head(route routes.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := route.Func(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		status, body := unwrapResult(result)
		if status == http.StatusNoContent {
			w.WriteHeader(status)
			return
		}

		data, err := utils.EncodeJSON(body)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(contentMD5Header, utils.ContentMD5(data))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(status)
	})
}

func preflight(allowed []string) http.Handler {
	return withAllow(allowed, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func withAllow(allowed []string, next http.Handler) http.Handler {
	value := strings.Join(allowed, ", ")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", value)
		w.Header().Set("Access-Control-Allow-Methods", value)
		next.ServeHTTP(w, r)
	})
}

func unwrapResult(result any) (int, any) {
	switch res := result.(type) {
	case models.Result:
		if res.Status == 0 {
			return http.StatusOK, res.Body
		}
		return res.Status, res.Body
	case *models.Result:
		if res == nil {
			return http.StatusOK, nil
		}
		return unwrapResult(*res)
	default:
		return http.StatusOK, result
	}
}
