// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package resolve

import (
	"errors"

	"github.com/gogama/reauth/request"
)

// A Replayer re-executes the logical request that produced an outcome
// and returns the new outcome of the replayed attempt, or a transport
// fault. The replayed attempt attaches the credential afresh, so it
// picks up a token refreshed after the original attempt.
type Replayer func() (*request.Outcome, error)

// Resolve maps an error outcome to a handler invocation and, for an
// expired credential, drives the refresh-and-replay protocol.
//
// A success outcome is returned unchanged without touching the handler,
// so Resolve is an idempotent no-op on success. For every error
// category except an expired credential, the matching handler method is
// invoked exactly once and the original outcome is returned unchanged.
//
// A 401 outcome on a request with a credential source is classified by
// the source:
//
// • expired: the source refreshes the credential and replay re-executes
// the request. The new outcome replaces the original and is itself
// resolved, except that a second consecutive expired classification is
// returned unresolved: the refresh-and-replay cycle runs at most once
// per original call, so an expired credential can never cause an
// infinite refresh loop. If the refresh fails with
// request.ErrNotLoggedIn the not-logged-in handler runs; if it fails
// with a transport error, or the replay itself faults, the I/O error
// handler runs; in all failure cases the original outcome is returned.
//
// • invalid: the not-logged-in handler runs.
//
// • unknown: the generic unauthorized handler runs with the error
// message.
//
// Handler invocations happen synchronously on the calling goroutine.
// Resolve never mutates an outcome; it returns either the original or
// the outcome of a replayed attempt.
func Resolve(o *request.Outcome, h Handler, replay Replayer) *request.Outcome {
	return resolve(o, h, replay)
}

func resolve(o *request.Outcome, h Handler, replay Replayer) *request.Outcome {
	if o == nil || !o.IsError() {
		return o
	}
	switch Categorize(o.StatusCode, o.ErrorMessage) {
	case Unauthorized:
		return unauthorized(o, h, replay)
	case Forbidden:
		h.InsufficientPermissions(o.ErrorMessage)
	case ServerError:
		h.ServerError(o.ErrorMessage)
	case NotFound:
		h.NotFound(o.StatusCode)
	case EntityTooLarge:
		h.EntityTooLarge()
	case Duplicate:
		h.Duplicate()
	case BadRequest:
		h.BadRequest(o.ErrorMessage)
	case RateLimited:
		retryAfter, ok := o.RetryAfter()
		h.RateLimited(retryAfter, ok)
	case Unreachable:
		h.Unreachable()
	case BadGateway:
		h.BadGateway()
	case Maintenance:
		retryAfter, ok := o.RetryAfter()
		h.Maintenance(retryAfter, ok)
	case GatewayTimeout:
		h.GatewayTimeout()
	default:
		h.UnknownCode(o.StatusCode, o.ErrorMessage)
	}
	return o
}

func unauthorized(o *request.Outcome, h Handler, replay Replayer) *request.Outcome {
	creds := o.Request.Creds
	if creds == nil {
		h.Unauthorized(o.ErrorMessage)
		return o
	}
	switch creds.Status(o) {
	case request.TokenExpired:
		if replay == nil {
			// Refresh budget exhausted: the replay after one refresh
			// came back expired again. Surface it unresolved.
			return o
		}
		if err := creds.Refresh(o); err != nil {
			if errors.Is(err, request.ErrNotLoggedIn) {
				h.NotLoggedIn()
			} else {
				h.IOError(err)
			}
			return o
		}
		replayed, err := replay()
		if err != nil {
			h.IOError(err)
			return o
		}
		return resolve(replayed, h, nil)
	case request.TokenInvalid:
		h.NotLoggedIn()
		return o
	default:
		h.Unauthorized(o.ErrorMessage)
		return o
	}
}
