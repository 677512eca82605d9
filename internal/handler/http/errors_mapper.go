package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-route-loader/internal/routes"
	"github.com/MKhiriev/go-route-loader/internal/service"
	"github.com/MKhiriev/go-route-loader/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrNoSecretForIssuer:   http.StatusNotFound,

	store.ErrEmptyIssuer:      http.StatusBadRequest,
	store.ErrSecretNotSaved:   http.StatusInternalServerError,
	store.ErrStoreUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,

	routes.ErrHandlerNotFound: http.StatusNotImplemented,

	errInvalidJSON:           http.StatusBadRequest,
	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

// statusFromError maps err to a response status. Authentication failures
// always map to 401, even when they wrap a mapped cause.
func statusFromError(err error) int {
	if service.IsAuthError(err) {
		return http.StatusUnauthorized
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
