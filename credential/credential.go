// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package credential

import (
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/gogama/reauth/request"
)

// Static is a fixed credential. It never refreshes: an expired or
// invalid token concludes in the not-logged-in path. Clear is a no-op
// since the value is immutable.
type Static string

var _ request.Credentials = Static("")

// Token returns the fixed credential.
func (s Static) Token() string { return string(s) }

// Status classifies every unauthorized outcome as TokenUnknown, since
// a fixed credential cannot be refreshed and gains nothing from an
// expired classification.
func (Static) Status(*request.Outcome) request.TokenStatus { return request.TokenUnknown }

// Refresh always returns request.ErrNotLoggedIn.
func (Static) Refresh(*request.Outcome) error { return request.ErrNotLoggedIn }

// Clear does nothing.
func (Static) Clear() {}

// A RefreshFunc obtains a fresh credential after the current one has
// been observed expired. The outcome that triggered the refresh is
// supplied for context. Return request.ErrNotLoggedIn if the user must
// authenticate again.
type RefreshFunc func(o *request.Outcome) (string, error)

// A ClassifyFunc classifies an unauthorized outcome.
type ClassifyFunc func(o *request.Outcome) request.TokenStatus

// DefaultClassify classifies an unauthorized outcome by its error
// message: a message beginning with "Expired" classifies as
// TokenExpired, one beginning with "Invalid" as TokenInvalid, anything
// else as TokenUnknown.
func DefaultClassify(o *request.Outcome) request.TokenStatus {
	switch {
	case strings.HasPrefix(o.ErrorMessage, "Expired"):
		return request.TokenExpired
	case strings.HasPrefix(o.ErrorMessage, "Invalid"):
		return request.TokenInvalid
	default:
		return request.TokenUnknown
	}
}

// A Manager is a credential source backed by a caller-supplied refresh
// function. It serializes refreshes internally: when racing requests
// all observe the same expired credential and call Refresh
// concurrently, only one refresh runs and the rest share its result.
//
// Manager is safe for concurrent use by multiple goroutines.
type Manager struct {
	mu       sync.RWMutex
	token    string
	refresh  RefreshFunc
	classify ClassifyFunc
	group    singleflight.Group
}

var _ request.Credentials = (*Manager)(nil)

// NewManager returns a Manager seeded with token, refreshing through
// refresh, and classifying unauthorized outcomes with classify. A nil
// classify uses DefaultClassify. A nil refresh makes every refresh
// conclude not-logged-in.
func NewManager(token string, refresh RefreshFunc, classify ClassifyFunc) *Manager {
	if classify == nil {
		classify = DefaultClassify
	}
	return &Manager{
		token:    token,
		refresh:  refresh,
		classify: classify,
	}
}

// Token returns the current credential, or the empty string if none is
// held.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Status classifies an unauthorized outcome using the manager's
// classify function.
func (m *Manager) Status(o *request.Outcome) request.TokenStatus {
	return m.classify(o)
}

// Refresh replaces the current credential via the refresh function.
// Concurrent callers are collapsed into a single refresh: the first
// caller runs the refresh function and every caller waiting on it
// shares the result. A caller whose stale token was already replaced by
// the time it enters the refresh returns immediately without refreshing
// again.
func (m *Manager) Refresh(o *request.Outcome) error {
	stale := m.Token()
	_, err, _ := m.group.Do("refresh", func() (interface{}, error) {
		// Double check: another caller in a previous flight may have
		// already replaced the stale token.
		m.mu.RLock()
		current := m.token
		m.mu.RUnlock()
		if current != stale {
			return nil, nil
		}
		if m.refresh == nil {
			return nil, request.ErrNotLoggedIn
		}
		token, err := m.refresh(o)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.token = token
		m.mu.Unlock()
		return nil, nil
	})
	return err
}

// Clear discards the current credential.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}
