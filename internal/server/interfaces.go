package server

import "context"

// Server defines the lifecycle contract of the listeners managed by this
// package.
type Server interface {
	// RunServer starts serving requests and blocks until SIGTERM, SIGINT or
	// SIGQUIT is received and the listeners are shut down.
	RunServer()

	// Run starts serving requests and blocks until ctx is done or a listener
	// fails. Listeners are shut down before Run returns.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the listeners and frees associated resources.
	Shutdown()
}
