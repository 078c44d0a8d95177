// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"strconv"
	"time"
)

// An Outcome is the typed result of one request attempt.
//
// An Outcome is created when an attempt begins and filled in as the
// attempt progresses: the status code and headers arrive first, then
// either the buffered success payload or the error message. Exactly one
// of Body and ErrorMessage is meaningful: Body is set if and only if
// the attempt succeeded (status below 400), ErrorMessage if and only if
// it failed.
//
// Once an Outcome has been delivered to a completion callback or a
// bounded-wait caller it is not mutated further. Resolution of an
// expired credential produces a new Outcome for the replayed attempt;
// the original is discarded, not updated in place.
type Outcome struct {
	// Request is the request that produced this outcome. It is never
	// nil; a replay is constructed from it.
	Request *Request

	// Attempt is the zero-based attempt number within the logical
	// request: zero for the initial attempt, one for a replay after a
	// credential refresh.
	Attempt int

	// StatusCode is the status classification returned by the remote
	// service.
	StatusCode int

	// Header contains the response header fields.
	Header http.Header

	// Body is the buffered success payload. It is nil whenever the
	// outcome is an error.
	Body []byte

	// ErrorMessage is a snippet of the error body returned by the
	// remote service. It is empty whenever the outcome is a success.
	ErrorMessage string

	// Start is the time the attempt began.
	Start time.Time

	// End is the time the attempt finished. It contains the zero value
	// while the attempt is underway.
	End time.Time
}

// IsError reports whether code classifies as an error. Any status code
// of 400 or greater is an error; everything below is a success.
func IsError(code int) bool {
	return code >= http.StatusBadRequest
}

// IsError reports whether the outcome is an error.
func (o *Outcome) IsError() bool {
	return IsError(o.StatusCode)
}

// Duration returns the wall time the attempt took. If the attempt has
// not finished, it returns the time elapsed since Start.
func (o *Outcome) Duration() time.Duration {
	if o.Start == (time.Time{}) {
		return 0
	}
	if o.End == (time.Time{}) {
		return time.Since(o.Start)
	}
	return o.End.Sub(o.Start)
}

// RetryAfter extracts the Retry-After value from the response headers.
// It understands both the delta-seconds and the HTTP-date forms. The
// second return value reports whether a usable value was present; a
// missing or malformed header yields (0, false).
//
// A Retry-After value typically accompanies rate-limited (429) and
// maintenance (503) outcomes.
func (o *Outcome) RetryAfter() (time.Duration, bool) {
	v := o.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(v); err == nil {
		d := time.Until(t)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}
