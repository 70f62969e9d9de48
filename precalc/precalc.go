// File: precalc/precalc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Precalculator coordinates the creation pipeline, the ready queue and
// the destruction pipeline. Ownership of each object moves atomically:
// creation worker -> ready queue -> Get caller -> destruction worker.

package precalc

import (
	"sync/atomic"

	"github.com/momentics/precalc/api"
	"github.com/momentics/precalc/internal/concurrency"
)

// Coordinator states. Transitions are one-way:
// running -> stopping -> stopped.
const (
	stateRunning int32 = iota
	stateStopping
	stateStopped
)

// Precalculator keeps a steady-state supply of precomputed objects.
// Create one with Create; all methods are safe for concurrent use,
// except that callers must not race Get against Stop (see Get).
type Precalculator[T any] struct {
	constructor func() T
	destructor  func(T)
	createPool  api.Executor
	destroyPool api.Executor
	queue       *ReadyQueue[T]
	state       int32

	// statistics
	created  int64
	gets     int64
	destroys int64
}

// Create builds a running Precalculator.
//
// The constructor runs on creation pool workers and must be safe for
// concurrent invocation; same for the destructor, which may be nil for
// objects needing no teardown. By default the creation pool has 2
// workers and the destruction pool 1; see the With* options.
//
// The creation pool is immediately seeded with one construction per
// worker, so after those complete, Get returns without waiting. A
// constructor panic is recovered, reported to the panic hook, and
// permanently loses that supply slot; there is no automatic retry, to
// keep a persistently failing constructor from spinning the pool.
func Create[T any](constructor func() T, destructor func(T), opts ...Option) *Precalculator[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	p := FromExecutors(constructor, destructor,
		concurrency.NewExecutor(cfg.createWorkers, cfg.numaNode, cfg.onPanic),
		concurrency.NewExecutor(cfg.destroyWorkers, cfg.numaNode, cfg.onPanic))
	for i := 0; i < cfg.createWorkers; i++ {
		p.precalc()
	}
	return p
}

// FromExecutors wires a Precalculator over prebuilt pipelines without
// seeding them. Use Create instead; this entry point exists for tests
// that inject fake executors.
func FromExecutors[T any](constructor func() T, destructor func(T), createPool, destroyPool api.Executor) *Precalculator[T] {
	if destructor == nil {
		destructor = func(T) {}
	}
	return &Precalculator[T]{
		constructor: constructor,
		destructor:  destructor,
		createPool:  createPool,
		destroyPool: destroyPool,
		queue:       NewReadyQueue[T](),
	}
}

// precalc schedules construction of one more object.
func (p *Precalculator[T]) precalc() {
	p.createPool.Submit(func() {
		obj := p.constructor()
		atomic.AddInt64(&p.created, 1)
		p.queue.Push(obj)
	})
}

// Get returns one precomputed object, transferring ownership to the
// caller. It first schedules one replacement construction, then blocks
// until an object is available — usually immediately, when the supply
// has kept up. There is no timeout.
//
// Get returns api.ErrStopped once Stop has begun. A Get that passed
// that check concurrently with Stop may still block past Stop's
// return; callers are responsible for not racing Get against Stop.
func (p *Precalculator[T]) Get() (T, error) {
	if atomic.LoadInt32(&p.state) != stateRunning {
		var zero T
		return zero, api.ErrStopped
	}
	p.precalc()
	atomic.AddInt64(&p.gets, 1)
	return p.queue.Pop(), nil
}

// Destroy schedules obj for destruction and returns immediately; the
// destructor runs on a destruction pool worker. The caller must not
// use obj afterwards. Returns api.ErrStopped once Stop has begun, in
// which case obj is not destroyed.
func (p *Precalculator[T]) Destroy(obj T) error {
	if atomic.LoadInt32(&p.state) != stateRunning {
		return api.ErrStopped
	}
	return p.scheduleDestroy(obj)
}

func (p *Precalculator[T]) scheduleDestroy(obj T) error {
	err := p.destroyPool.Submit(func() { p.destructor(obj) })
	if err != nil {
		return api.ErrStopped
	}
	atomic.AddInt64(&p.destroys, 1)
	return nil
}

// Stop shuts the instance down, blocking until both pipelines have
// quiesced. Protocol: stop creation admission and wait for in-flight
// constructions; drain the ready queue, scheduling destruction of every
// remaining object; stop destruction admission and wait for all
// scheduled destructions. On return every object this instance ever
// constructed has been destroyed exactly once — either via an earlier
// Destroy or via the drain — and no worker goroutines remain.
//
// A second Stop returns api.ErrStopped without waiting.
func (p *Precalculator[T]) Stop() error {
	if !atomic.CompareAndSwapInt32(&p.state, stateRunning, stateStopping) {
		return api.ErrStopped
	}
	p.createPool.Close()
	p.createPool.Join()
	for {
		obj, ok := p.queue.TryPop()
		if !ok {
			break
		}
		p.scheduleDestroy(obj)
	}
	p.destroyPool.Close()
	p.destroyPool.Join()
	atomic.StoreInt32(&p.state, stateStopped)
	return nil
}

// Ready returns the number of objects currently available to Get.
func (p *Precalculator[T]) Ready() int {
	return p.queue.Len()
}

// Stats returns coordinator counters plus both pipelines' metrics,
// the latter prefixed with "create_pool." and "destroy_pool.".
func (p *Precalculator[T]) Stats() map[string]int64 {
	out := map[string]int64{
		"objects_created":    atomic.LoadInt64(&p.created),
		"gets":               atomic.LoadInt64(&p.gets),
		"destroys_scheduled": atomic.LoadInt64(&p.destroys),
		"ready_objects":      int64(p.queue.Len()),
	}
	if src, ok := p.createPool.(api.StatsSource); ok {
		for k, v := range src.Stats() {
			out["create_pool."+k] = v
		}
	}
	if src, ok := p.destroyPool.(api.StatsSource); ok {
		for k, v := range src.Stats() {
			out["destroy_pool."+k] = v
		}
	}
	return out
}
