// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"syscall"
)

// A Category is the category of a transport fault, as reported by
// function Categorize().
//
// Transport faults are errors raised while speaking to the remote
// service instead of a status code: the request produced no Outcome.
// They are never resolved by the failure resolver; they always reach
// the caller, and Categorize lets the caller tell a timeout apart from
// a connection-level failure.
type Category int

const (
	// Not indicates a nil error or an error that is not a recognized
	// transport fault category.
	Not Category = iota
	// Timeout indicates a timeout: either an attempt-level network
	// timeout or a bounded-wait timeout reported by the waiting
	// caller.
	//
	// Function Categorize() will return Timeout if the error or any of
	// its wrapped causes has a Timeout() function that reports true.
	Timeout
	// ConnRefused indicates the remote host refused the connection,
	// and corresponds to the POSIX error code ECONNREFUSED.
	//
	// Function Categorize() will return ConnRefused if the error is
	// not a Timeout, and the error or any of its wrapped causes is
	// equal to syscall.ECONNREFUSED.
	ConnRefused
	// ConnReset indicates the remote host returned an RST packet on a
	// previously active TCP connection, and corresponds to the POSIX
	// error code ECONNRESET.
	//
	// Function Categorize() will return ConnReset if the error is not
	// a Timeout, and the error or any of its wrapped causes is equal
	// to syscall.ECONNRESET.
	ConnReset
)

// Categorize returns the fault category of the given error. A nil
// error, and an error that does not represent a transport-level fault,
// both produce the return value Not.
//
// In assessing the category, Categorize looks at wrapped cause errors
// contained within err, not just err itself. It never checks whether an
// error has a Temporary() function that returns true, as the semantics
// of Temporary() aren't entirely clear.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ECONNRESET {
			return ConnReset
		} else if errno == syscall.ECONNREFUSED {
			return ConnRefused
		}
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}
