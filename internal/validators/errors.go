package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyIssuer     = errors.New("issuer is required")
	ErrInvalidIssuer   = errors.New("invalid issuer")
	ErrEmptySecret     = errors.New("secret value is required")
	ErrInvalidAudience = errors.New("invalid audience")
	ErrInvalidLifetime = errors.New("invalid token lifetime")
)
