// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reauth_test

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/gogama/reauth"
	"github.com/gogama/reauth/credential"
	"github.com/gogama/reauth/request"
	"github.com/gogama/reauth/resolve"
)

// alertHandler reports failures that the application cannot recover
// from on its own. Everything it does not override is a no-op.
type alertHandler struct {
	resolve.Base
}

func (alertHandler) NotLoggedIn() {
	fmt.Println("session ended, please log in again")
}

func (alertHandler) Maintenance(retryAfter time.Duration, ok bool) {
	if ok {
		fmt.Printf("service in maintenance, back in %v\n", retryAfter)
	} else {
		fmt.Println("service in maintenance")
	}
}

func Example() {
	creds := credential.NewManager("Bearer initial", func(o *request.Outcome) (string, error) {
		// Exchange a long-lived credential for a fresh access token
		// here. Returning request.ErrNotLoggedIn sends the user back to
		// the login screen instead.
		return "Bearer refreshed", nil
	}, nil)

	client := &reauth.Client{Resolver: alertHandler{}}

	r, err := request.New("GET", "https://api.example.com/profile", nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	r.Creds = creds

	o, err := client.Do(r)
	if err != nil {
		fmt.Println("transport fault:", err)
		return
	}
	if o.IsError() {
		// The resolver already dispatched the failure; the outcome is
		// returned for callers that want the details too.
		fmt.Println("failed with status", o.StatusCode)
		return
	}
	fmt.Println(string(o.Body))
}

func Example_logging() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}))
	g := &reauth.HandlerGroup{}
	h := reauth.LogEvents(logger)
	for _, evt := range reauth.Events() {
		g.PushBack(evt, h)
	}
	client := &reauth.Client{Handlers: g}

	o, err := reauth.Get(client, "https://api.example.com/things", request.Form{"page": {"1"}})
	if err != nil {
		fmt.Println("transport fault:", err)
		return
	}
	fmt.Println(o.StatusCode)
}

func Example_wait() {
	client := &reauth.Client{}
	r, err := request.New("POST", "https://api.example.com/things", request.Form{"name": {"x"}})
	if err != nil {
		fmt.Println(err)
		return
	}
	o, err := client.Wait(r, 5*time.Second)
	if reauth.IsTimeout(err) {
		fmt.Println("still running in the background, gave up waiting")
		return
	}
	if err != nil {
		fmt.Println("transport fault:", err)
		return
	}
	fmt.Println(o.StatusCode)
}
