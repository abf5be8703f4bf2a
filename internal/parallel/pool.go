// Package parallel provides the worker pool used to fan pixel sweeps out
// over several goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// WorkerPool is a fixed set of goroutines pulling work from a shared queue.
//
// Thread safety: WorkerPool is safe for concurrent use, including Close
// racing ExecuteAll; work accepted before Close still runs.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// jobs is the shared work queue.
	jobs chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// mu is held for reading while work is queued and for writing by Close,
	// so nothing is queued once done is closed.
	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		jobs:    make(chan func(), workers*4),
		done:    make(chan struct{}),
	}

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

// worker is the main loop for each worker goroutine.
// On shutdown it drains the queue before returning.
func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case work := <-p.jobs:
			work()
		case <-p.done:
			for {
				select {
				case work := <-p.jobs:
					work()
				default:
					return
				}
			}
		}
	}
}

// ExecuteAll runs every work item and waits for all of them to complete.
// Once the pool is closed, the items run on the calling goroutine instead,
// so callers always observe finished work when ExecuteAll returns.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		for _, fn := range work {
			fn()
		}
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(work))
	for _, fn := range work {
		p.jobs <- func() {
			defer completion.Done()
			fn()
		}
	}
	p.mu.RUnlock()
	completion.Wait()
}

// Close stops the workers once the queued work has run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Band is a half-open range of rows [Start, End).
type Band struct {
	Start, End int
}

// SplitBands divides [start, end) into at most parts contiguous, non-empty
// bands of near-equal size. It returns nil for an empty range.
func SplitBands(start, end, parts int) []Band {
	n := end - start
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	bands := make([]Band, 0, parts)
	size, extra := n/parts, n%parts
	for i, s := 0, start; i < parts; i++ {
		e := s + size
		if i < extra {
			e++
		}
		bands = append(bands, Band{Start: s, End: e})
		s = e
	}
	return bands
}
