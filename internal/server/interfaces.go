package server

import "context"

// Server defines the lifecycle contract of the route server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down.
	RunServer()

	// Run serves until ctx is done and then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
