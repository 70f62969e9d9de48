// Package precalc
// Author: momentics <momentics@gmail.com>
//
// Precalculates expensive-to-create objects in worker pools.
//
// A Precalculator with a creation pool of N workers keeps N objects
// ready at all times: every Get hands out one precomputed object and
// schedules one replacement construction. With construction latency L
// and an ongoing stream of Get calls, mean Get latency approaches L/N;
// an individual Get still has worst case L. Destruction is likewise
// offloaded: Destroy returns immediately and the destructor runs on a
// separate pool. Stop shuts both pools down and guarantees every object
// the instance ever constructed is destroyed exactly once.
package precalc
