// File: precalc/options.go
// Package precalc defines functional options for Create.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package precalc

import "github.com/momentics/precalc/internal/concurrency"

type config struct {
	createWorkers  int
	destroyWorkers int
	numaNode       int
	onPanic        concurrency.PanicHook
}

func defaultConfig() config {
	return config{
		createWorkers:  2,
		destroyWorkers: 1,
		numaNode:       -1,
	}
}

// Option customizes Precalculator initialization.
type Option func(*config)

// WithCreateWorkers sets the creation pool width, which is also the
// steady-state supply target. Values below 1 are not rejected: a
// zero-width creation pool produces nothing and Get blocks forever.
func WithCreateWorkers(n int) Option {
	return func(c *config) {
		c.createWorkers = n
	}
}

// WithDestroyWorkers sets the destruction pool width.
func WithDestroyWorkers(n int) Option {
	return func(c *config) {
		c.destroyWorkers = n
	}
}

// WithNUMANode enables pinning of pool worker threads, targeting the
// given NUMA node on supported platforms. Default -1 disables pinning.
func WithNUMANode(node int) Option {
	return func(c *config) {
		c.numaNode = node
	}
}

// WithPanicHook installs a handler for panics recovered from
// constructor and destructor invocations. The default logs through the
// standard logger.
func WithPanicHook(hook func(recovered any)) Option {
	return func(c *config) {
		c.onPanic = hook
	}
}
