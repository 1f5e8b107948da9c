package server

// Server defines the lifecycle contract of the daemon process.
//
// RunServer blocks until a stop signal arrives or the listener fails;
// Shutdown releases the listener and stops background workers.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
