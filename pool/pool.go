// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pool

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrClosed is returned by Submit after the pool has been closed.
var ErrClosed = errors.New("reauth/pool: pool is closed")

// A Pool executes submitted tasks on background goroutines. It is an
// explicitly constructed, caller-owned handle: construct one with New,
// share it by reference, and Close it when its work is done. The
// process-wide Default pool is just one such instance, created at
// process start.
//
// A Pool is safe for concurrent task submission from multiple
// goroutines without external synchronization. Tasks submitted
// independently have no ordering between them; a pool constructed with
// New(1) runs tasks one at a time and so serializes all calls made
// through it.
//
// There is no cancellation: once submitted, a task runs to completion.
type Pool struct {
	sem    *semaphore.Weighted // nil means unbounded
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

var defaultPool = New(0)

// Default returns the process-wide default pool. It is unbounded and
// lives for the life of the process.
func Default() *Pool {
	return defaultPool
}

// New constructs a pool running at most workers tasks concurrently.
// A workers value of zero or less means no limit: every task gets its
// own goroutine immediately.
func New(workers int) *Pool {
	p := &Pool{}
	if workers > 0 {
		p.sem = semaphore.NewWeighted(int64(workers))
	}
	return p
}

// Submit schedules task for execution and returns without waiting for
// it to run. Submission never blocks the caller: on a bounded pool the
// task waits for a free worker slot on its own goroutine. Submit
// returns ErrClosed if the pool has been closed.
func (p *Pool) Submit(task func()) error {
	if task == nil {
		panic("reauth/pool: nil task")
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	p.wg.Add(1)
	p.mu.Unlock()
	go func() {
		defer p.wg.Done()
		if p.sem != nil {
			// Background context: slot acquisition cannot fail.
			_ = p.sem.Acquire(context.Background(), 1)
			defer p.sem.Release(1)
		}
		task()
	}()
	return nil
}

// Close marks the pool closed and waits for all previously submitted
// tasks to finish. Submissions racing with Close either run to
// completion or fail with ErrClosed.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.wg.Wait()
}
