// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool fans resolution queries out across a fixed set of
// goroutines.
//
// The audits re-run every (element, lanes, target) query on a pool and
// compare the answers with a sequential pass:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	kinds := workerpool.Collect(pool, len(queries), func(i int) hwy.RegisterKind {
//	    q := queries[i]
//	    return hwy.Resolve(q.Elem, q.Lanes, q.Target)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool owns a fixed set of worker goroutines that live until Close.
type Pool struct {
	workers int
	tasks   chan func()
	once    sync.Once
	closed  atomic.Bool
}

// New starts a pool of the given number of workers, or GOMAXPROCS workers
// if workers <= 0.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{workers: workers, tasks: make(chan func(), workers)}
	for range workers {
		go func() {
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Close stops the workers once queued tasks finish. It is idempotent; a
// closed pool runs later work on the calling goroutine.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n) and returns when all
// calls are done. Workers claim indices from a shared counter, so uneven
// query costs balance out.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	workers := min(p.workers, n)
	if workers <= 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- func() {
			defer wg.Done()
			for i := int(next.Add(1)) - 1; i < n; i = int(next.Add(1)) - 1 {
				fn(i)
			}
		}
	}
	wg.Wait()
}

// Collect calls fn for every index in [0, n) on the pool and returns the
// results in index order. Results do not depend on scheduling.
func Collect[T any](p *Pool, n int, fn func(i int) T) []T {
	out := make([]T, max(n, 0))
	p.ParallelForAtomic(n, func(i int) {
		out[i] = fn(i)
	})
	return out
}
