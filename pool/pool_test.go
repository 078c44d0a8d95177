// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pool

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	assert.NotNil(t, Default())
	assert.Same(t, Default(), Default())
}

func TestSubmit(t *testing.T) {
	t.Run("runs the task", func(t *testing.T) {
		p := New(0)
		done := make(chan struct{})
		require.NoError(t, p.Submit(func() { close(done) }))
		<-done
		p.Close()
	})
	t.Run("nil task panics", func(t *testing.T) {
		p := New(0)
		defer p.Close()
		assert.Panics(t, func() { _ = p.Submit(nil) })
	})
	t.Run("does not block on a full pool", func(t *testing.T) {
		p := New(1)
		release := make(chan struct{})
		started := make(chan struct{})
		require.NoError(t, p.Submit(func() {
			close(started)
			<-release
		}))
		<-started
		// The only worker slot is held. Submission must still return
		// immediately.
		ran := make(chan struct{})
		require.NoError(t, p.Submit(func() { close(ran) }))
		close(release)
		<-ran
		p.Close()
	})
}

func TestBoundedConcurrency(t *testing.T) {
	const workers = 3
	const tasks = 50
	p := New(workers)
	var running, peak int32
	var wg sync.WaitGroup
	wg.Add(tasks)
	for i := 0; i < tasks; i++ {
		require.NoError(t, p.Submit(func() {
			defer wg.Done()
			n := atomic.AddInt32(&running, 1)
			for {
				old := atomic.LoadInt32(&peak)
				if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
					break
				}
			}
			atomic.AddInt32(&running, -1)
		}))
	}
	wg.Wait()
	p.Close()
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(workers))
}

func TestClose(t *testing.T) {
	t.Run("waits for tasks", func(t *testing.T) {
		p := New(0)
		var done int32
		release := make(chan struct{})
		require.NoError(t, p.Submit(func() {
			<-release
			atomic.StoreInt32(&done, 1)
		}))
		go close(release)
		p.Close()
		assert.Equal(t, int32(1), atomic.LoadInt32(&done), "Close returns only after tasks finish")
	})
	t.Run("submit after close", func(t *testing.T) {
		p := New(0)
		p.Close()
		err := p.Submit(func() { t.Error("task ran on a closed pool") })
		assert.ErrorIs(t, err, ErrClosed)
	})
	t.Run("idempotent", func(t *testing.T) {
		p := New(2)
		p.Close()
		p.Close()
	})
}
