package server

// Server defines the lifecycle contract of the local API server.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT is received and the
// server has shut down.
type Server interface {
	RunServer()
	Shutdown()
}
