// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request provides the value types for an authenticated request
execution: the logical request description (Request), the typed result
of one attempt (Outcome), the payload variants (Form and Blob), and the
credential source contract (Credentials).

A Request describes one logical network action and is immutable once
submitted. The same Request may be executed twice: once for the initial
attempt and once for a replay after a credential refresh. Each
execution converts the Request into a fresh lower-level http.Request
with ToHTTPRequest, which attaches the current credential at conversion
time.

	r, err := request.New("POST", "https://api.example.com/things",
		request.Form{"name": {"value"}})
	...
	r.Creds = creds

An Outcome holds either a buffered success payload or an error message
snippet, never both, plus the status classification and a back
reference to the Request that produced it.
*/
package request
