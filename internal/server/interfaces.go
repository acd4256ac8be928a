package server

// Server is the lifecycle contract of the report server.
type Server interface {
	// RunServer serves requests and blocks until SIGINT, SIGTERM or SIGQUIT
	// is received, then shuts down gracefully.
	RunServer()

	// Shutdown stops accepting requests and waits for running ones.
	Shutdown()
}
