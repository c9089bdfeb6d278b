// Package workerpool provides the shared, bounded-concurrency pool that
// backs the data-parallel kernels in the engine: transforms, down-sampling,
// and the min/max folds. Range selection (a binary search) and republish-all
// (a sequential loop over the cache snapshot) do not use it. It never suspends the caller
// past what the work itself needs, and it is shared process-wide so
// concurrent engine operations don't each spin up their own goroutine farm.
package workerpool

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Pool bounds the number of goroutines actively executing kernel work at
// once. It is safe for concurrent use by many callers.
type Pool struct {
	sem *semaphore.Weighted
}

// shared is the process-wide pool every package-level helper uses, sized to
// the number of logical CPUs so CPU-bound kernels don't oversubscribe.
var shared = New(runtime.GOMAXPROCS(0))

// New creates a pool with the given maximum concurrency. Most callers
// should use the package-level helper (Each) against the shared pool
// instead of constructing their own.
func New(maxConcurrency int) *Pool {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(maxConcurrency))}
}

// Each runs fn(i) for every i in [0, n) across the pool, blocking until all
// calls complete. Acquire never fails here: ctx.Background() has no
// deadline and the pool's weight is never negative, so the only way Acquire
// returns an error is a canceled context, which we never pass.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		_ = p.sem.Acquire(context.Background(), 1)
		go func(i int) {
			defer wg.Done()
			defer p.sem.Release(1)
			fn(i)
		}(i)
	}
	wg.Wait()
}

// Each runs fn(i) for every i in [0, n) on the shared process-wide pool.
func Each(n int, fn func(i int)) {
	shared.Each(n, fn)
}
