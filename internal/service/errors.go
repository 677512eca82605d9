package service

import "errors"

// Authentication failures. All of them are reported to clients as 401.
var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrExpired             = errors.New("signature timestamp expired")
	ErrSignatureMismatch   = errors.New("signature mismatch")
	ErrUnsupportedAuthType = errors.New("unsupported auth type")
	ErrInvalidToken        = errors.New("invalid token")
)

var (
	// ErrNoSecretForIssuer is returned when no secret is registered for the
	// issuer a token is issued for or a signature is checked against.
	ErrNoSecretForIssuer = errors.New("no secret for issuer")

	ErrInvalidDataProvided = errors.New("invalid data provided")
)

// IsAuthError reports whether err is one of the authentication failures.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthenticated) ||
		errors.Is(err, ErrExpired) ||
		errors.Is(err, ErrSignatureMismatch) ||
		errors.Is(err, ErrUnsupportedAuthType) ||
		errors.Is(err, ErrInvalidToken)
}
