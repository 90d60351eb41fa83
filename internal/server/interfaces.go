package server

import "context"

// Server defines the lifecycle contract of the gateway's transport server.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled,
	// a stop signal arrives or the listener fails.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting at most until ctx is
	// done for in-flight requests.
	Shutdown(ctx context.Context) error
}
