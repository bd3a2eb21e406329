// Package server runs the TaskFlow HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown of in-flight requests.
package server
