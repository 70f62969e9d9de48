// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of the precalc library.
// Defines the draining Executor abstraction used by both pipelines,
// the graceful shutdown and stats surfaces, and the sentinel errors
// shared across packages. Implementations live in internal/concurrency
// and precalc; test doubles in fake.
package api
