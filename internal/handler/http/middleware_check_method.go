// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-route-loader/internal/routes"
	"github.com/MKhiriev/go-route-loader/internal/utils"
	"github.com/MKhiriev/go-route-loader/models"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// It answers 405 with an "Allow" header listing every verb router serves
// for the requested path (parameters included) and a JSON error body. If no
// verb matches the path at all the request is answered as 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) == 0 {
			utils.WriteError(w, &models.ErrorResponse{Code: http.StatusNotFound, Message: http.StatusText(http.StatusNotFound)})
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteError(w, &models.ErrorResponse{
			Code:    http.StatusMethodNotAllowed,
			Message: fmt.Sprintf("method %s is not allowed on %s", r.Method, r.URL.Path),
		})
	}
}

func allowedMethods(router chi.Routes, path string) []string {
	var allowed []string
	for _, method := range routes.Methods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
