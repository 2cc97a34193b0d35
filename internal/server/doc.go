// Package server wires and runs the relay's listeners.
//
// It provides orchestration for the relay and metrics HTTP listeners,
// including startup, signal handling and graceful shutdown bounded by the
// configured timeout.
package server
