// File: precalc/ready_queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ReadyQueue is the handoff buffer between creation workers and Get
// callers: unbounded FIFO, safe for concurrent push and pop.

package precalc

import (
	"sync"

	"github.com/eapache/queue"
)

// ReadyQueue is an unbounded blocking FIFO of completed objects.
type ReadyQueue[T any] struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items *queue.Queue
}

// NewReadyQueue creates an empty queue.
func NewReadyQueue[T any]() *ReadyQueue[T] {
	rq := &ReadyQueue[T]{items: queue.New()}
	rq.cond = sync.NewCond(&rq.mu)
	return rq
}

// Push appends v and wakes one blocked Pop. Never blocks.
func (q *ReadyQueue[T]) Push(v T) {
	q.mu.Lock()
	q.items.Add(v)
	q.mu.Unlock()
	q.cond.Signal()
}

// Pop removes and returns the oldest item, blocking until one exists.
func (q *ReadyQueue[T]) Pop() T {
	q.mu.Lock()
	for q.items.Length() == 0 {
		q.cond.Wait()
	}
	v := q.items.Remove().(T)
	q.mu.Unlock()
	return v
}

// TryPop removes and returns the oldest item; ok is false if empty.
func (q *ReadyQueue[T]) TryPop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.items.Length() == 0 {
		return v, false
	}
	return q.items.Remove().(T), true
}

// Len returns the current queue depth.
func (q *ReadyQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Length()
}
