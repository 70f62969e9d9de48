// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions shared across the precalc library.

package api

import "errors"

var (
	// ErrExecutorClosed indicates a task was submitted after Close.
	ErrExecutorClosed = errors.New("executor is closed")

	// ErrStopped indicates an operation on a Precalculator whose Stop
	// has already begun or completed.
	ErrStopped = errors.New("precalculator is stopped")
)
