// Package server wires and runs the backend's HTTP transport.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown. All listen and timeout parameters
// come from the resolved configuration the server is constructed with.
package server
