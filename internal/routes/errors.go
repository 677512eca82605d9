package routes

import "errors"

// Load-time failures. Any of them aborts startup.
var (
	ErrDirectoryRead    = errors.New("cannot read routes directory")
	ErrInvalidRouteName = errors.New("invalid route name")
	ErrRouteCollision   = errors.New("route collision")
	ErrHandlerNotFound  = errors.New("handler not found")
	ErrDuplicateHandler = errors.New("handler already registered")
	ErrInvalidManifest  = errors.New("invalid routes manifest")
)
