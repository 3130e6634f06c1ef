package server

import "context"

// Server defines the lifecycle of the process level server.
//
// RunServer blocks until a stop signal arrives or serving fails, then shuts
// everything down. Shutdown may also be called directly, e.g. from tests.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
