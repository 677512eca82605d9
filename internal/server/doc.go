// Package server runs the HTTP server: startup, signal handling and
// graceful shutdown.
package server
