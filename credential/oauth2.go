// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package credential

import (
	"errors"
	"sync"

	"golang.org/x/oauth2"

	"github.com/gogama/reauth/request"
)

// A TokenSource adapts an oauth2.TokenSource into a credential source.
// The current access token is attached to outgoing requests; a refresh
// asks the underlying source for a new token.
//
// An unauthorized outcome is classified as expired whenever the
// underlying source could still mint a fresh token, which is the usual
// situation with OAuth2 access tokens. A refresh that the authorization
// server rejects (oauth2.RetrieveError) concludes not-logged-in, since
// the refresh token itself is no longer honored; any other refresh
// failure is reported as a transport fault.
//
// TokenSource is safe for concurrent use by multiple goroutines.
type TokenSource struct {
	mu  sync.Mutex
	src oauth2.TokenSource
	tok *oauth2.Token
}

var _ request.Credentials = (*TokenSource)(nil)

// FromTokenSource returns a credential source over src, optionally
// seeded with an initial token. With a nil initial token the first
// request goes out without an Authorization header and relies on the
// unauthorized outcome to trigger the first fetch.
func FromTokenSource(src oauth2.TokenSource, initial *oauth2.Token) *TokenSource {
	return &TokenSource{src: src, tok: initial}
}

// Token returns the current access token, prefixed with its type
// ("Bearer ..."), or the empty string if no token is held.
func (ts *TokenSource) Token() string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.tok == nil || ts.tok.AccessToken == "" {
		return ""
	}
	return ts.tok.Type() + " " + ts.tok.AccessToken
}

// Status classifies every unauthorized outcome as TokenExpired: the
// underlying source is always asked for a fresh token before giving up.
func (ts *TokenSource) Status(*request.Outcome) request.TokenStatus {
	return request.TokenExpired
}

// Refresh obtains a new token from the underlying source.
func (ts *TokenSource) Refresh(*request.Outcome) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	tok, err := ts.src.Token()
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) {
			return request.ErrNotLoggedIn
		}
		return err
	}
	if ts.tok != nil && tok.AccessToken == ts.tok.AccessToken {
		// The source handed back the token that was just rejected; it
		// cannot mint a fresh one.
		return request.ErrNotLoggedIn
	}
	ts.tok = tok
	return nil
}

// Clear discards the current token. The underlying source is kept, so
// a later refresh may still succeed.
func (ts *TokenSource) Clear() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.tok = nil
}
