// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reauth

import (
	"fmt"
	"time"

	"github.com/gogama/reauth/fault"
	"github.com/gogama/reauth/request"
)

// Callbacks receives the result of a request submitted with Async.
//
// Exactly one of Completed and Failed is invoked per submission, on a
// worker-pool goroutine. The id parameter is the correlation id of the
// submitted request.
type Callbacks interface {
	// Completed is invoked with the final outcome of the request,
	// after any resolution (and possible refresh-and-replay) has run.
	// Check the outcome's IsError to tell success from a classified
	// error.
	Completed(id string, o *request.Outcome)

	// Failed is invoked when the request ended in a transport fault or
	// a panic instead of an outcome.
	Failed(id string, err error)
}

// ErrWaitTimeout is returned by Wait when the bounded wait expires
// before the request completes. It reports Timeout() true, so
// IsTimeout (and fault.Categorize) distinguish it from transport
// faults.
var ErrWaitTimeout error = timeoutError{}

type timeoutError struct{}

func (timeoutError) Error() string { return "reauth: wait timeout" }
func (timeoutError) Timeout() bool { return true }

// IsTimeout reports whether err represents a timeout: either a bounded
// wait that expired (ErrWaitTimeout) or a transport fault whose cause
// chain reports a timeout.
func IsTimeout(err error) bool {
	return fault.Categorize(err) == fault.Timeout
}

// Async submits the request to the worker pool and returns immediately;
// the outcome is delivered to cb when the request finishes. The caller
// goroutine never blocks.
//
// When a Resolver is attached, an error outcome is passed through
// resolution (which may refresh the credential and replay the request
// once) before cb sees it, so cb.Completed always receives the final
// outcome. A transport fault, or a panic escaping a resolver handler,
// is routed to cb.Failed instead; no outcome is delivered for it.
//
// Async returns an error only if the pool rejects the submission (it
// has been closed).
func (c *Client) Async(r *request.Request, cb Callbacks) error {
	if cb == nil {
		panic("reauth: nil callbacks")
	}
	return c.pool().Submit(func() {
		defer func() {
			if v := recover(); v != nil {
				cb.Failed(r.ID, panicError(v))
			}
		}()
		o, err := c.execute(r)
		if err != nil {
			cb.Failed(r.ID, err)
			return
		}
		if o.IsError() && c.Resolver != nil {
			o = c.resolveOutcome(o)
		}
		c.handlers().run(AfterExecution, o)
		cb.Completed(r.ID, o)
	})
}

// Wait submits the request to the worker pool and blocks the calling
// goroutine until the request completes or d elapses, whichever comes
// first. If the wait expires, Wait returns ErrWaitTimeout; the
// in-flight task is abandoned, not cancelled, and keeps running to
// completion in the background.
//
// When a Resolver is attached and the request completes with an error
// outcome, the resolve step (which may itself perform a nested refresh
// request and a replay) is submitted as its own task on the pool and
// bounded by a second wait of the same duration. The worst-case wall
// time for Wait is therefore 2d, not d: the resolver gets a full
// independent timeout budget. This is a deliberate property, not a
// defect; callers that need a hard overall bound should halve d.
//
// The error return distinguishes three conditions: nil with an Outcome
// (success or classified error status), ErrWaitTimeout (the wait
// expired; test with IsTimeout), and a transport fault (of type
// *url.Error).
func (c *Client) Wait(r *request.Request, d time.Duration) (*request.Outcome, error) {
	type result struct {
		o   *request.Outcome
		err error
	}
	ch := make(chan result, 2)
	submit := func(f func() (*request.Outcome, error)) error {
		return c.pool().Submit(func() {
			defer func() {
				if v := recover(); v != nil {
					ch <- result{nil, panicError(v)}
				}
			}()
			o, err := f()
			ch <- result{o, err}
		})
	}

	resolving := c.Resolver != nil
	err := submit(func() (*request.Outcome, error) {
		o, err := c.execute(r)
		if err != nil {
			return nil, err
		}
		if !(o.IsError() && resolving) {
			c.handlers().run(AfterExecution, o)
		}
		return o, nil
	})
	if err != nil {
		return nil, err
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	var res result
	select {
	case res = <-ch:
	case <-timer.C:
		return nil, ErrWaitTimeout
	}
	if res.err != nil {
		return nil, res.err
	}
	if !(res.o.IsError() && resolving) {
		return res.o, nil
	}

	// Second stage: resolution runs as its own task with a fresh wait
	// budget of the same duration.
	o := res.o
	err = submit(func() (*request.Outcome, error) {
		resolved := c.resolveOutcome(o)
		c.handlers().run(AfterExecution, resolved)
		return resolved, nil
	})
	if err != nil {
		return nil, err
	}
	// A fresh timer: the first one may have fired while the first
	// result was being received.
	timer2 := time.NewTimer(d)
	defer timer2.Stop()
	select {
	case res = <-ch:
	case <-timer2.C:
		return nil, ErrWaitTimeout
	}
	return res.o, res.err
}

func panicError(v interface{}) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("reauth: panic during execution: %w", err)
	}
	return fmt.Errorf("reauth: panic during execution: %v", v)
}
