// Package concurrency
// Author: momentics <momentics@gmail.com>
//
// Execution pool machinery for the precalc library.
// Implements a fixed-width Executor with an unbounded submission backlog,
// close+join draining shutdown, panic-recovering workers, and optional
// CPU/NUMA pinning of worker OS threads (see pin.go / pin_linux.go).
package concurrency
