package http

import (
	"net/http"

	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/routes"
	"github.com/MKhiriev/go-route-loader/internal/service"
	"github.com/MKhiriev/go-route-loader/internal/utils"
)

// authenticate resolves the "Authorization" header according to policy and
// stores the identity in the request context. Routes whose policy does not
// require authentication are returned unchanged.
//
// Failures are answered through the error responder, which reports every
// authentication error as 401.
func (h *Handler) authenticate(policy routes.Policy) func(http.Handler) http.Handler {
	opts := service.ResolveOptions{
		Private:  policy.Private,
		Bypass:   policy.Bypass,
		Audience: policy.Audience,
	}

	return func(next http.Handler) http.Handler {
		if !policy.Auth {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identity, err := h.services.AuthResolver.Resolve(ctx, r.Header.Get("Authorization"), opts)
			if err != nil {
				h.writeError(w, r, err)
				return
			}

			logger.FromRequest(r).Debug().
				Str("issuer", identity.Issuer).
				Str("scheme", string(identity.Scheme)).
				Bool("bypassed", identity.Bypassed).
				Msg("request authenticated")

			next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
		})
	}
}
