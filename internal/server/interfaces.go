package server

// Server is the lifecycle of the API process.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives or the
	// listener fails, then drains in-flight requests.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests,
	// at most for the shutdown timeout.
	Shutdown()
}
