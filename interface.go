// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reauth

import (
	"time"

	"github.com/gogama/reauth/request"
)

// Doer is the interface that wraps the basic Do method.
//
// Do executes a request to completion on the calling goroutine and
// returns the final outcome (and error, if any). Client implements the
// Doer interface, and any other Doer implementation must behave
// substantially the same as Client.Do.
type Doer interface {
	Do(r *request.Request) (*request.Outcome, error)
}

// Submitter is the interface that wraps the basic Async method.
//
// Async submits a request for background execution and delivers the
// result through the callbacks. Client implements the Submitter
// interface, and any other Submitter implementation must behave
// substantially the same as Client.Async.
type Submitter interface {
	Async(r *request.Request, cb Callbacks) error
}

// Waiter is the interface that wraps the basic Wait method.
//
// Wait submits a request for background execution and blocks the
// caller up to the given duration for its result. Client implements
// the Waiter interface, and any other Waiter implementation must
// behave substantially the same as Client.Wait, including the
// two-stage (at most doubled) wait when a resolver must run.
type Waiter interface {
	Wait(r *request.Request, d time.Duration) (*request.Outcome, error)
}

// Executor is the interface that groups the Do, Async, and Wait
// methods. Client implements Executor.
type Executor interface {
	Doer
	Submitter
	Waiter
}

// Get uses the specified Doer to issue a GET to the specified URL. The
// params, if any, are encoded into the URL query string.
func Get(d Doer, url string, params request.Form) (*request.Outcome, error) {
	return do(d, "GET", url, params)
}

// Post uses the specified Doer to issue a form POST to the specified
// URL.
func Post(d Doer, url string, params request.Form) (*request.Outcome, error) {
	return do(d, "POST", url, params)
}

// Put uses the specified Doer to issue a form PUT to the specified URL.
func Put(d Doer, url string, params request.Form) (*request.Outcome, error) {
	return do(d, "PUT", url, params)
}

// Delete uses the specified Doer to issue a DELETE to the specified
// URL.
func Delete(d Doer, url string, params request.Form) (*request.Outcome, error) {
	return do(d, "DELETE", url, params)
}

func do(d Doer, method, url string, params request.Form) (*request.Outcome, error) {
	r, err := request.New(method, url, params)
	if err != nil {
		return nil, err
	}
	return d.Do(r)
}
