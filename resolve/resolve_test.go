// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package resolve

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogama/reauth/request"
)

func newOutcome(code int, message string) *request.Outcome {
	r, err := request.New("GET", "http://example.com/things", nil)
	if err != nil {
		panic(err)
	}
	o := &request.Outcome{Request: r, StatusCode: code}
	if request.IsError(code) {
		o.ErrorMessage = message
	} else {
		o.Body = []byte(message)
	}
	return o
}

func noReplay(t *testing.T) Replayer {
	return func() (*request.Outcome, error) {
		t.Fatal("unexpected replay")
		return nil, nil
	}
}

func TestResolveSuccessIsNoOp(t *testing.T) {
	h := &recorder{}
	o := newOutcome(200, "payload")
	once := Resolve(o, h, noReplay(t))
	twice := Resolve(once, h, noReplay(t))
	assert.Same(t, o, once)
	assert.Same(t, once, twice)
	assert.Empty(t, h.calls)
}

func TestResolveDispatch(t *testing.T) {
	cases := []struct {
		code     int
		message  string
		expected string
	}{
		{400, "missing field", "BadRequest(missing field)"},
		{403, "nope", "InsufficientPermissions(nope)"},
		{404, "", "NotFound(404)"},
		{410, "", "NotFound(410)"},
		{409, "", "Duplicate"},
		{413, "", "EntityTooLarge"},
		{429, "", "RateLimited(0s,false)"},
		{500, "boom", "ServerError(boom)"},
		{502, "", "BadGateway"},
		{503, "Maintenance", "Maintenance(0s,false)"},
		{503, "down", "Unreachable"},
		{504, "", "GatewayTimeout"},
		{521, "", "Unreachable"},
		{418, "teapot", "UnknownCode(418,teapot)"},
	}
	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			h := &recorder{}
			o := newOutcome(c.code, c.message)
			resolved := Resolve(o, h, noReplay(t))
			assert.Same(t, o, resolved, "original outcome returned unchanged")
			assert.Equal(t, []string{c.expected}, h.calls)
		})
	}
}

func TestResolveRetryAfter(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		h := &recorder{}
		o := newOutcome(429, "")
		o.Header = http.Header{"Retry-After": {"30"}}
		Resolve(o, h, noReplay(t))
		assert.Equal(t, []string{"RateLimited(30s,true)"}, h.calls)
	})
	t.Run("maintenance", func(t *testing.T) {
		h := &recorder{}
		o := newOutcome(503, "Maintenance")
		o.Header = http.Header{"Retry-After": {"60"}}
		Resolve(o, h, noReplay(t))
		assert.Equal(t, []string{"Maintenance(1m0s,true)"}, h.calls)
	})
}

func TestResolveUnauthorized(t *testing.T) {
	t.Run("no credential source", func(t *testing.T) {
		h := &recorder{}
		o := newOutcome(401, "who are you")
		resolved := Resolve(o, h, noReplay(t))
		assert.Same(t, o, resolved)
		assert.Equal(t, []string{"Unauthorized(who are you)"}, h.calls)
	})
	t.Run("invalid credential", func(t *testing.T) {
		h := &recorder{}
		creds := &scriptedCreds{status: request.TokenInvalid}
		o := newOutcome(401, "Invalid")
		o.Request.Creds = creds
		resolved := Resolve(o, h, noReplay(t))
		assert.Same(t, o, resolved)
		assert.Equal(t, []string{"NotLoggedIn"}, h.calls)
		assert.Zero(t, creds.refreshes)
	})
	t.Run("unknown classification", func(t *testing.T) {
		h := &recorder{}
		o := newOutcome(401, "mystery")
		o.Request.Creds = &scriptedCreds{status: request.TokenUnknown}
		resolved := Resolve(o, h, noReplay(t))
		assert.Same(t, o, resolved)
		assert.Equal(t, []string{"Unauthorized(mystery)"}, h.calls)
	})
	t.Run("expired, refresh and replay succeed", func(t *testing.T) {
		h := &recorder{}
		creds := &scriptedCreds{status: request.TokenExpired}
		o := newOutcome(401, "Expired")
		o.Request.Creds = creds
		replays := 0
		replacement := newOutcome(200, "payload")
		resolved := Resolve(o, h, func() (*request.Outcome, error) {
			replays++
			require.Equal(t, 1, creds.refreshes, "refresh completes before replay")
			return replacement, nil
		})
		assert.Same(t, replacement, resolved, "replay outcome replaces the original")
		assert.Equal(t, 1, creds.refreshes)
		assert.Equal(t, 1, replays)
		assert.Empty(t, h.calls)
	})
	t.Run("expired, replay outcome is resolved too", func(t *testing.T) {
		h := &recorder{}
		creds := &scriptedCreds{status: request.TokenExpired}
		o := newOutcome(401, "Expired")
		o.Request.Creds = creds
		replacement := newOutcome(404, "")
		resolved := Resolve(o, h, func() (*request.Outcome, error) {
			return replacement, nil
		})
		assert.Same(t, replacement, resolved)
		assert.Equal(t, []string{"NotFound(404)"}, h.calls)
	})
	t.Run("second consecutive expired surfaces unresolved", func(t *testing.T) {
		h := &recorder{}
		creds := &scriptedCreds{status: request.TokenExpired}
		o := newOutcome(401, "Expired")
		o.Request.Creds = creds
		replays := 0
		second := newOutcome(401, "Expired")
		second.Request.Creds = creds
		resolved := Resolve(o, h, func() (*request.Outcome, error) {
			replays++
			return second, nil
		})
		assert.Same(t, second, resolved)
		assert.Equal(t, 1, creds.refreshes, "no second refresh")
		assert.Equal(t, 1, replays, "no second replay")
		assert.Empty(t, h.calls)
	})
	t.Run("refresh says not logged in", func(t *testing.T) {
		h := &recorder{}
		creds := &scriptedCreds{status: request.TokenExpired, refreshErr: request.ErrNotLoggedIn}
		o := newOutcome(401, "Expired")
		o.Request.Creds = creds
		resolved := Resolve(o, h, noReplay(t))
		assert.Same(t, o, resolved)
		assert.Equal(t, []string{"NotLoggedIn"}, h.calls)
	})
	t.Run("refresh transport fault", func(t *testing.T) {
		h := &recorder{}
		refreshErr := errors.New("connection reset")
		creds := &scriptedCreds{status: request.TokenExpired, refreshErr: refreshErr}
		o := newOutcome(401, "Expired")
		o.Request.Creds = creds
		resolved := Resolve(o, h, noReplay(t))
		assert.Same(t, o, resolved)
		assert.Equal(t, []string{"IOError(connection reset)"}, h.calls)
	})
	t.Run("replay transport fault", func(t *testing.T) {
		h := &recorder{}
		creds := &scriptedCreds{status: request.TokenExpired}
		o := newOutcome(401, "Expired")
		o.Request.Creds = creds
		resolved := Resolve(o, h, func() (*request.Outcome, error) {
			return nil, errors.New("broken pipe")
		})
		assert.Same(t, o, resolved, "original outcome survives a failed replay")
		assert.Equal(t, 1, creds.refreshes)
		assert.Equal(t, []string{"IOError(broken pipe)"}, h.calls)
	})
}

func TestResolveNil(t *testing.T) {
	h := &recorder{}
	assert.Nil(t, Resolve(nil, h, nil))
	assert.Empty(t, h.calls)
}

// recorder records handler invocations as printable strings so tests
// can assert on exact dispatch.
type recorder struct {
	calls []string
}

var _ Handler = (*recorder)(nil)

func (r *recorder) record(s string) { r.calls = append(r.calls, s) }

func (r *recorder) NotLoggedIn()          { r.record("NotLoggedIn") }
func (r *recorder) Unauthorized(m string) { r.record("Unauthorized(" + m + ")") }
func (r *recorder) InsufficientPermissions(m string) {
	r.record("InsufficientPermissions(" + m + ")")
}
func (r *recorder) NotFound(code int)   { r.record(fmt.Sprintf("NotFound(%d)", code)) }
func (r *recorder) Duplicate()          { r.record("Duplicate") }
func (r *recorder) BadRequest(m string) { r.record("BadRequest(" + m + ")") }
func (r *recorder) EntityTooLarge()     { r.record("EntityTooLarge") }
func (r *recorder) RateLimited(d time.Duration, ok bool) {
	r.record(fmt.Sprintf("RateLimited(%v,%t)", d, ok))
}
func (r *recorder) ServerError(m string) { r.record("ServerError(" + m + ")") }
func (r *recorder) BadGateway()          { r.record("BadGateway") }
func (r *recorder) Maintenance(d time.Duration, ok bool) {
	r.record(fmt.Sprintf("Maintenance(%v,%t)", d, ok))
}
func (r *recorder) Unreachable()    { r.record("Unreachable") }
func (r *recorder) GatewayTimeout() { r.record("GatewayTimeout") }
func (r *recorder) UnknownCode(code int, m string) {
	r.record(fmt.Sprintf("UnknownCode(%d,%s)", code, m))
}
func (r *recorder) IOError(err error) { r.record("IOError(" + err.Error() + ")") }

// scriptedCreds is a credential source with a fixed classification and
// refresh result.
type scriptedCreds struct {
	token      string
	status     request.TokenStatus
	refreshErr error
	refreshes  int
}

var _ request.Credentials = (*scriptedCreds)(nil)

func (c *scriptedCreds) Token() string                                { return c.token }
func (c *scriptedCreds) Status(*request.Outcome) request.TokenStatus { return c.status }
func (c *scriptedCreds) Refresh(*request.Outcome) error {
	c.refreshes++
	return c.refreshErr
}
func (c *scriptedCreds) Clear() { c.token = "" }
