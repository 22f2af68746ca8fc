// Copyright 2025 The go-qsort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool used by the benchmark
// harness to fill large input vectors. The pool is created once per run and
// reused for every vector the run generates.
//
// Sorting itself never goes through the pool: every algorithm in package
// qsort runs on the calling goroutine.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForBatched(len(data), 1<<16, func(batch, start, end int) {
//	    fill(data[start:end], seed+int64(batch))
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers, or GOMAXPROCS workers if
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelForBatched splits [0, n) into consecutive batches of batchSize
// indices and calls fn once per batch with the batch number and its
// [start, end) bounds. Workers grab batches through an atomic counter.
// Blocks until every batch is done.
//
// Batch boundaries depend only on n and batchSize, never on the number of
// workers, so per-batch results are reproducible across pool sizes.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(batch, start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = n
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)

	if workers == 1 || p.closed.Load() {
		for batch := range numBatches {
			start := batch * batchSize
			fn(batch, start, min(start+batchSize, n))
		}
		return
	}

	var nextBatch atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					batch := int(nextBatch.Add(1)) - 1
					if batch >= numBatches {
						return
					}
					start := batch * batchSize
					fn(batch, start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
