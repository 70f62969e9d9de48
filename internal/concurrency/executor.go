// File: internal/concurrency/executor.go
// Package concurrency implements the draining task executor.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor dispatches tasks across a fixed set of worker goroutines.
// Submission never blocks: tasks land in an unbounded FIFO backlog and
// workers drain it. Close stops admission, Join waits until the backlog
// is empty and every worker has exited, which gives the close+join
// semantics both precalc pipelines rely on.

package concurrency

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/precalc/api"
)

// PanicHook receives values recovered from panicking tasks.
type PanicHook func(recovered any)

// Executor manages a pool of worker goroutines over a shared backlog.
type Executor struct {
	mu      sync.Mutex
	cond    *sync.Cond
	backlog *queue.Queue // of func()
	closed  bool

	workers int
	wg      sync.WaitGroup
	onPanic PanicHook

	// statistics
	submitted int64
	completed int64
	panics    int64
}

// NewExecutor creates an Executor with numWorkers workers. If numaNode
// is non-negative, each worker pins its OS thread via PinCurrentThread.
// A nil hook logs recovered panics through the standard logger.
//
// numWorkers below 1 is honored as given: a zero-worker executor
// accepts tasks but never runs them.
func NewExecutor(numWorkers, numaNode int, hook PanicHook) *Executor {
	if hook == nil {
		hook = func(r any) { log.Printf("concurrency: task panic: %v", r) }
	}
	e := &Executor{
		backlog: queue.New(),
		workers: numWorkers,
		onPanic: hook,
	}
	e.cond = sync.NewCond(&e.mu)
	for i := 0; i < numWorkers; i++ {
		e.wg.Add(1)
		go e.runWorker(i, numaNode)
	}
	return e
}

// Submit enqueues a task, returning api.ErrExecutorClosed after Close.
func (e *Executor) Submit(task func()) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return api.ErrExecutorClosed
	}
	e.backlog.Add(task)
	atomic.AddInt64(&e.submitted, 1)
	e.mu.Unlock()
	e.cond.Signal()
	return nil
}

// NumWorkers returns the configured worker count.
func (e *Executor) NumWorkers() int {
	return e.workers
}

// Close stops admission of new tasks. Tasks already in the backlog
// still run; workers exit once the backlog is empty.
func (e *Executor) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	e.cond.Broadcast()
}

// Join blocks until every admitted task has completed and all workers
// have exited.
func (e *Executor) Join() {
	e.wg.Wait()
}

// Stats returns basic executor metrics.
func (e *Executor) Stats() map[string]int64 {
	submitted := atomic.LoadInt64(&e.submitted)
	completed := atomic.LoadInt64(&e.completed)
	return map[string]int64{
		"submitted_tasks": submitted,
		"completed_tasks": completed,
		"pending_tasks":   submitted - completed,
		"task_panics":     atomic.LoadInt64(&e.panics),
		"num_workers":     int64(e.workers),
	}
}

// runWorker is the main loop for one worker goroutine.
func (e *Executor) runWorker(id, numaNode int) {
	defer e.wg.Done()
	if numaNode >= 0 {
		PinCurrentThread(numaNode, id)
	}
	for {
		e.mu.Lock()
		for e.backlog.Length() == 0 && !e.closed {
			e.cond.Wait()
		}
		if e.backlog.Length() == 0 {
			// closed and fully drained
			e.mu.Unlock()
			return
		}
		task := e.backlog.Remove().(func())
		e.mu.Unlock()
		e.executeTask(task)
	}
}

// executeTask runs the task, recovering panics to keep the worker alive.
func (e *Executor) executeTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			atomic.AddInt64(&e.panics, 1)
			e.onPanic(r)
		}
		atomic.AddInt64(&e.completed, 1)
	}()
	task()
}
