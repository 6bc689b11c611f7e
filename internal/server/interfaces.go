package server

// Server is the lifecycle contract for the transport server managed by this
// package.
//
// [Server.RunServer] blocks until the process receives a termination signal;
// shutdown is driven by that signal internally, so callers never stop the
// server directly.
type Server interface {
	// RunServer starts serving requests and blocks until a termination
	// signal has been handled and in-flight requests have drained.
	RunServer()
}
