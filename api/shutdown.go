// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown is implemented by components that quiesce all
// internal workers and release resources before returning.
type GracefulShutdown interface {
	// Stop performs a blocking, orderly shutdown. Returns ErrStopped
	// if shutdown has already been initiated.
	Stop() error
}
