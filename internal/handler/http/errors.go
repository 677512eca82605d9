package http

import "errors"

// errInvalidJSON is returned when a request body cannot be decoded.
var errInvalidJSON = errors.New("invalid JSON was passed")
