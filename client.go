// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reauth

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gogama/reauth/pool"
	"github.com/gogama/reauth/request"
	"github.com/gogama/reauth/resolve"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

var emptyHandlers = HandlerGroup{}

// maxErrorMessage caps the error-body snippet carried on an error
// Outcome.
const maxErrorMessage = 512

// A Client executes authenticated requests and transparently recovers
// from expired credentials by refreshing and replaying once. Its zero
// value is a valid configuration.
//
// The zero value client uses http.DefaultClient (from net/http) as the
// HTTPDoer, the process-wide pool.Default() as the worker pool, no
// failure resolver, and an empty handler group (no event handlers).
//
// Client is safe for concurrent use by multiple goroutines. Its
// HTTPDoer typically has internal state (cached TCP connections), so
// Client instances should be reused instead of created per request.
//
// A Client is higher-level than an HTTPDoer. The HTTPDoer is
// responsible for all details of sending the HTTP request and receiving
// the response (connections, redirects, compression); Client builds on
// top of it:
//
// • Client attaches the current credential to each attempt, computed
// fresh per attempt so a replay picks up a refreshed token;
//
// • Client reads and buffers the entire response body, classifying the
// result into a success or error Outcome;
//
// • Client dispatches error outcomes through the attached Resolver,
// which drives a one-shot refresh-and-replay for expired credentials;
//
// • Client exposes three execution modes: Do (plain blocking), Async
// (notify on completion via the worker pool), and Wait (bounded wait
// with a hard timeout); and
//
// • Client invokes user-provided handler chains at designated events
// within the request lifecycle, allowing features such as logging to
// be mixed in from outside.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard
	// net/http package is used.
	HTTPDoer HTTPDoer
	// Pool is the worker pool on which Async and Wait execute requests
	// and on which resolution work (refresh and replay) runs.
	//
	// If Pool is nil, the process-wide pool.Default() is used.
	Pool *pool.Pool
	// Resolver receives the failure-category dispatch for error
	// outcomes, including the refresh-and-replay protocol for expired
	// credentials.
	//
	// If Resolver is nil, error outcomes are returned to the caller
	// untouched.
	Resolver resolve.Handler
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during the request lifecycle.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

// Do executes the request on the calling goroutine and returns its
// outcome, resolving an error outcome through the attached Resolver
// (which may refresh the credential and replay the request once).
//
// The returned error is non-nil only for a transport fault: a problem
// speaking HTTP, not a non-2XX status. An error status is returned as
// an error Outcome with a nil error. Any returned error is of type
// *url.Error.
//
// Do has no timeout of its own; bound it with the request's context,
// or use Wait for a bounded wait on the worker pool.
func (c *Client) Do(r *request.Request) (*request.Outcome, error) {
	o, err := c.execute(r)
	if err != nil {
		return nil, err
	}
	if o.IsError() && c.Resolver != nil {
		o = c.resolveOutcome(o)
	}
	c.handlers().run(AfterExecution, o)
	return o, nil
}

// execute runs the initial attempt of a logical request.
func (c *Client) execute(r *request.Request) (*request.Outcome, error) {
	o := &request.Outcome{Request: r}
	c.handlers().run(BeforeExecution, o)
	if err := c.attempt(o); err != nil {
		return nil, err
	}
	return o, nil
}

// attempt performs one transport round trip and fills in the outcome.
// On a transport fault the outcome is abandoned and the fault returned;
// no AfterAttempt event fires for a faulted attempt.
func (c *Client) attempt(o *request.Outcome) error {
	r := o.Request
	o.Start = time.Now()
	httpReq, err := r.ToHTTPRequest(r.Context())
	if err != nil {
		return urlErrorWrap(r, err)
	}
	c.handlers().run(BeforeAttempt, o)
	resp, err := c.doer().Do(httpReq)
	if err != nil {
		return urlErrorWrap(r, err)
	}
	body, err := readBody(resp)
	if err != nil {
		return urlErrorWrap(r, err)
	}
	o.StatusCode = resp.StatusCode
	o.Header = resp.Header
	if request.IsError(resp.StatusCode) {
		o.ErrorMessage = errorMessage(body)
	} else {
		o.Body = body
		if r.Sink != nil {
			if _, err = r.Sink.Write(body); err != nil {
				return urlErrorWrap(r, err)
			}
		}
	}
	o.End = time.Now()
	c.handlers().run(AfterAttempt, o)
	return nil
}

// resolveOutcome dispatches an error outcome through the Resolver. The
// replay closure re-attempts the same logical request with the next
// attempt number; since the lower-level request is built fresh, the
// replay carries the refreshed credential.
func (c *Client) resolveOutcome(o *request.Outcome) *request.Outcome {
	c.handlers().run(BeforeResolve, o)
	return resolve.Resolve(o, c.Resolver, c.replayer(o.Request, o.Attempt+1))
}

func (c *Client) replayer(r *request.Request, attempt int) resolve.Replayer {
	return func() (*request.Outcome, error) {
		o := &request.Outcome{Request: r, Attempt: attempt}
		if err := c.attempt(o); err != nil {
			return nil, err
		}
		return o, nil
	}
}

func readBody(resp *http.Response) ([]byte, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	return io.ReadAll(resp.Body)
}

// errorMessage turns an error body into the message snippet carried on
// the outcome: whitespace trimmed, capped at maxErrorMessage bytes.
func errorMessage(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorMessage {
		s = s[:maxErrorMessage]
	}
	return s
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}
	return c.HTTPDoer
}

func (c *Client) pool() *pool.Pool {
	if c.Pool == nil {
		return pool.Default()
	}
	return c.Pool
}

func (c *Client) handlers() *HandlerGroup {
	if c.Handlers == nil {
		return &emptyHandlers
	}
	return c.Handlers
}

func urlErrorWrap(r *request.Request, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(r.Method),
		URL: r.URL.String(),
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
