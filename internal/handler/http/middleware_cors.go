package http

import "net/http"

const (
	corsAllowMethods = "POST, GET, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Origin, X-Requested-With, Content-Type, Accept, Authorization"
)

// withCORS sets permissive CORS headers on every response. OPTIONS routes
// narrow Access-Control-Allow-Methods down to the verbs of their path.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", corsAllowMethods)
		header.Set("Access-Control-Allow-Headers", corsAllowHeaders)

		next.ServeHTTP(w, r)
	})
}
