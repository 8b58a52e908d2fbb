package httpserver

import "errors"

var (
	// ErrStart is returned when the listener cannot be started.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown is returned when draining connections fails.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrRunning is returned by a second Run on the same Server.
	ErrRunning = errors.New("HTTP server already running")
)
