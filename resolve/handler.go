// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package resolve

import "time"

// A Handler receives the failure-category dispatch for error outcomes.
// Resolve invokes exactly one method per resolved outcome (plus
// NotLoggedIn or IOError when a credential refresh itself fails).
//
// Handler methods are invoked synchronously on the goroutine executing
// the request, which for Async and Wait is a worker-pool goroutine
// rather than the submitting one. They are side-effect
// hooks: they must not assume they can alter the outcome, which is
// returned unchanged (or replaced wholesale by a replay). A handler
// that panics is not caught by Resolve; the panic propagates to the
// executor's fault boundary.
//
// Embed Base to implement only the methods of interest.
type Handler interface {
	// NotLoggedIn is invoked when the credential is invalid or a
	// refresh concluded the user must authenticate again. The
	// credential should be cleared and the user sent back through
	// login.
	NotLoggedIn()

	// Unauthorized is invoked for a 401 outcome that cannot be
	// attributed to the credential (no credential source, or the
	// source classified it as unknown).
	Unauthorized(message string)

	// InsufficientPermissions is invoked for a 403 outcome.
	InsufficientPermissions(message string)

	// NotFound is invoked for a 404 or 410 outcome; code tells which.
	NotFound(code int)

	// Duplicate is invoked for a 409 outcome.
	Duplicate()

	// BadRequest is invoked for a 400 outcome.
	BadRequest(message string)

	// EntityTooLarge is invoked for a 413 outcome.
	EntityTooLarge()

	// RateLimited is invoked for a 429 outcome. retryAfter is the
	// parsed Retry-After value; ok reports whether one was present.
	RateLimited(retryAfter time.Duration, ok bool)

	// ServerError is invoked for a 500 outcome.
	ServerError(message string)

	// BadGateway is invoked for a 502 outcome.
	BadGateway()

	// Maintenance is invoked for a 503 outcome whose message is
	// exactly "Maintenance". retryAfter is the parsed Retry-After
	// value; ok reports whether one was present.
	Maintenance(retryAfter time.Duration, ok bool)

	// Unreachable is invoked for a 521 outcome, or a 503 outcome with
	// any message other than "Maintenance".
	Unreachable()

	// GatewayTimeout is invoked for a 504 outcome.
	GatewayTimeout()

	// UnknownCode is invoked for any error status with no dedicated
	// handler.
	UnknownCode(code int, message string)

	// IOError is invoked when a credential refresh or a replay fails
	// with a transport fault rather than a status code.
	IOError(err error)
}

// Base is a Handler whose every method is a no-op. Embed it in a
// handler implementation to pick up defaults for the methods you do
// not care about.
type Base struct{}

var _ Handler = Base{}

func (Base) NotLoggedIn()                                {}
func (Base) Unauthorized(string)                         {}
func (Base) InsufficientPermissions(string)              {}
func (Base) NotFound(int)                                {}
func (Base) Duplicate()                                  {}
func (Base) BadRequest(string)                           {}
func (Base) EntityTooLarge()                             {}
func (Base) RateLimited(time.Duration, bool)             {}
func (Base) ServerError(string)                          {}
func (Base) BadGateway()                                 {}
func (Base) Maintenance(time.Duration, bool)             {}
func (Base) Unreachable()                                {}
func (Base) GatewayTimeout()                             {}
func (Base) UnknownCode(int, string)                     {}
func (Base) IOError(error)                               {}
