// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package reauth provides a client-side request execution layer that
transparently recovers from expired authorization by refreshing a
credential and replaying the request exactly once.

Create a Client to begin making requests.

	client := &reauth.Client{}
	r, err := request.New("GET", "https://api.example.com/things", nil)
	...
	o, err := client.Do(r)

Attach a credential source to a request to have the current token sent
on every attempt, and a failure resolver to the client to classify
error outcomes and drive the refresh-and-replay protocol:

	r.Creds = credential.NewManager(token, refreshFn, nil)
	client := &reauth.Client{
		Resolver: appHandler{},
	}

When an attempt comes back 401 and the credential source classifies the
token as expired, the client asks the source to refresh, replays the
same logical request once with the fresh token, and returns the
replay's outcome. A replay that comes back expired again is surfaced
as-is; the refresh cycle never runs twice for one call.

Requests execute in one of three modes. Do blocks the calling goroutine
with no timeout of its own. Async submits the request to a worker pool
and notifies callbacks on completion:

	err := client.Async(r, callbacks)

Wait submits the request and blocks up to a hard timeout; if a resolver
must run, the resolution (including any nested refresh request) gets a
second full timeout budget, bounding the call at twice the duration:

	o, err := client.Wait(r, 5*time.Second)
	if reauth.IsTimeout(err) {
		...
	}

Callers that need to control concurrency or ordering can supply their
own pool; a single-worker pool serializes every call made through it:

	p := pool.New(1)
	defer p.Close()
	client := &reauth.Client{Pool: p}

To hook into the fine-grained details of the request lifecycle, install
a handler into the appropriate handler chain; LogEvents provides a
ready-made structured-logging handler:

	g := &reauth.HandlerGroup{}
	g.PushBack(reauth.AfterExecution, reauth.LogEvents(logger))
	client := &reauth.Client{Handlers: g}
*/
package reauth
