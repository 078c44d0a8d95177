// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "errors"

// ErrNotLoggedIn is returned by Credentials.Refresh when no refreshed
// credential can be obtained and the user must authenticate again. The
// resolver routes it to the not-logged-in handler.
var ErrNotLoggedIn = errors.New("reauth/request: not logged in")

// A TokenStatus classifies why a request with a credential attached
// came back unauthorized.
type TokenStatus int

const (
	// TokenExpired means the credential was valid but has lapsed. The
	// resolver refreshes the credential and replays the request once.
	TokenExpired TokenStatus = iota
	// TokenInvalid means the credential was rejected outright. The
	// resolver routes this to the not-logged-in handler; no refresh is
	// attempted.
	TokenInvalid
	// TokenUnknown means the unauthorized outcome cannot be attributed
	// to the credential. The resolver routes it to the generic
	// unauthorized handler together with the error message.
	TokenUnknown
)

// Credentials supplies the opaque authorization token attached to
// outgoing requests and owns the token lifecycle. The core never
// inspects or stores the token; it only attaches the current value and
// asks for a refresh when an unauthorized outcome classifies as
// expired.
//
// Implementations must be safe for concurrent use by multiple
// goroutines: racing requests that all observe an expired credential
// will call Refresh concurrently, and Refresh is expected to serialize
// internally (see credential.Manager for a ready-made implementation).
type Credentials interface {
	// Token returns the current credential, or the empty string if
	// none is available. An empty token means no Authorization header
	// is attached.
	Token() string

	// Status classifies a just-observed unauthorized outcome.
	Status(o *Outcome) TokenStatus

	// Refresh obtains a fresh credential so that a subsequent Token
	// call returns a usable value. It returns ErrNotLoggedIn if the
	// user must authenticate again, or a transport error if the
	// refresh attempt itself failed.
	Refresh(o *Outcome) error

	// Clear discards the current credential.
	Clear()
}
