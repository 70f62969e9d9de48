// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// fake_executor.go — Extremely simple inline api.Executor for tests.
package fake

import "github.com/momentics/precalc/api"

// Executor runs every submitted task synchronously on the caller's
// goroutine, making consumer tests deterministic.
type Executor struct {
	Calls  int
	closed bool
}

func (e *Executor) Submit(task func()) error {
	if e.closed {
		return api.ErrExecutorClosed
	}
	e.Calls++
	task()
	return nil
}

func (e *Executor) NumWorkers() int { return 1 }
func (e *Executor) Close()          { e.closed = true }
func (e *Executor) Join()           {}
