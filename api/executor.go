// File: api/executor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor contract for asynchronous task dispatch with draining shutdown.

package api

// Executor abstracts a fixed-width pool of workers executing submitted
// tasks asynchronously.
//
// Shutdown is two-phase: Close stops admission of new tasks, Join blocks
// until every task admitted before Close has finished running. Together
// they give close+join drain semantics: after Join returns, no task is
// pending and no worker goroutine attributable to the executor remains.
type Executor interface {
	// Submit schedules task for execution. It never blocks on a full
	// backlog; it returns ErrExecutorClosed after Close.
	Submit(task func()) error

	// NumWorkers returns the number of worker goroutines.
	NumWorkers() int

	// Close stops accepting new tasks. Already-submitted tasks still run.
	Close()

	// Join blocks until all admitted tasks have completed and all
	// workers have exited. Call Close first; Join without Close blocks
	// until Close happens elsewhere.
	Join()
}
