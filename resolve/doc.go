// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package resolve classifies error outcomes into a closed set of failure
categories and dispatches each category to a caller-supplied handler.
For the expired-credential category it drives the refresh-and-replay
protocol: refresh the credential through the request's credential
source, re-execute the same logical request exactly once, and resolve
the replacement outcome.

Implement the parts of Handler you care about by embedding Base:

	type appHandler struct {
		resolve.Base
	}

	func (appHandler) NotLoggedIn() {
		// clear session, show login
	}

	o = resolve.Resolve(o, appHandler{}, replay)

The dispatch table is fixed and total: every error status falls into
exactly one Category, with unlisted codes reported through UnknownCode.
*/
package resolve
