package service

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/go-route-loader/models"
)

// Result label values of route_loader_auth_results_total.
const (
	resultAccepted = "accepted"
	resultBypassed = "bypassed"
	resultRejected = "rejected"
	resultCanceled = "canceled"
)

// AuthResolverMetrics counts resolver outcomes by scheme and result.
type AuthResolverMetrics struct {
	inner   AuthResolver
	results *prometheus.CounterVec
}

// NewAuthResolverMetrics registers the counter with reg.
func NewAuthResolverMetrics(reg prometheus.Registerer) *AuthResolverMetrics {
	return &AuthResolverMetrics{
		results: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "route_loader_auth_results_total",
			Help: "Authentication outcomes by credential scheme and result",
		}, []string{"scheme", "result"}),
	}
}

func (m *AuthResolverMetrics) Resolve(ctx context.Context, header string, opts ResolveOptions) (models.Identity, error) {
	identity, err := m.inner.Resolve(ctx, header, opts)

	result := resultAccepted
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		result = resultCanceled
	case err != nil:
		result = resultRejected
	case identity.Bypassed:
		result = resultBypassed
	}

	m.results.WithLabelValues(schemeLabel(header), result).Inc()

	return identity, err
}

func (m *AuthResolverMetrics) Wrap(inner AuthResolver) AuthResolver {
	m.inner = inner
	return m
}

// schemeLabel keeps the label set bounded: unknown schemes collapse to "other".
func schemeLabel(header string) string {
	switch scheme := models.ParseAuthParams(header).AuthType; scheme {
	case "":
		return "none"
	case models.AuthTypeBearer, models.AuthTypeSig, models.AuthTypeBypass:
		return string(scheme)
	default:
		return "other"
	}
}
