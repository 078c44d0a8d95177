// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reauth

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality.
type Event int

const (
	// BeforeExecution identifies the event that occurs before the
	// logical request starts executing.
	//
	// When Client fires BeforeExecution, the outcome is non-nil but
	// the only field that has been set is the request.
	BeforeExecution Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// transport attempt: once for the initial attempt and once more
	// for a replay after a credential refresh.
	//
	// When Client fires BeforeAttempt, the outcome's attempt number
	// and start time are set; the lower-level HTTP request (with the
	// current credential attached) has been built and is about to be
	// sent.
	BeforeAttempt
	// AfterAttempt identifies the event that occurs after a transport
	// attempt produced a status code, regardless of whether it
	// classifies as success or error.
	//
	// AfterAttempt does not fire for an attempt that ended in a
	// transport fault: a faulted attempt produces no outcome.
	AfterAttempt
	// BeforeResolve identifies the event that occurs before an error
	// outcome is dispatched through the attached Resolver. It fires
	// only when a Resolver is attached, and only for error outcomes.
	//
	// Resolution may replace the outcome: handlers observing
	// AfterExecution can see a different outcome than the one passed
	// to BeforeResolve.
	BeforeResolve
	// AfterExecution identifies the event that occurs after the
	// logical request finishes with a final outcome, after any
	// resolution has run. It fires with the final outcome, which for a
	// refreshed-and-replayed request is the replay's outcome.
	//
	// AfterExecution does not fire for a request that ended in a
	// transport fault.
	AfterExecution
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecution",
	"BeforeAttempt",
	"AfterAttempt",
	"BeforeResolve",
	"AfterExecution",
}

// Events returns a slice containing all events which can occur while a
// Client executes a request, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExecution,
		BeforeAttempt,
		AfterAttempt,
		BeforeResolve,
		AfterExecution,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
