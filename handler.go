// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reauth

import (
	"github.com/gogama/reauth/request"
)

// A HandlerGroup is a group of event handler chains which can be
// installed in a Client.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler chain
// for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("reauth: nil handler")
	}
	if evt < 0 || int(evt) >= numEvents {
		panic("reauth: invalid event")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, o *request.Outcome) {
	i := int(evt)
	if i < len(g.handlers) {
		run(g.handlers[i], evt, o)
	}
}

func run(chain []Handler, evt Event, o *request.Outcome) {
	for _, h := range chain {
		h.Handle(evt, o)
	}
}

// A Handler handles the occurrence of an event during the execution of
// a request.
type Handler interface {
	Handle(Event, *request.Outcome)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with the appropriate
// signature, HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *request.Outcome)

// Handle calls f(evt, o).
func (f HandlerFunc) Handle(evt Event, o *request.Outcome) {
	f(evt, o)
}
