// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package credential provides ready-made implementations of the
request.Credentials contract: Static for a fixed token, Manager for a
refresh-function-backed token with single-flight refresh
de-duplication, and TokenSource for adapting an oauth2.TokenSource.

	creds := credential.NewManager(savedToken,
		func(o *request.Outcome) (string, error) {
			return login.Refresh()
		}, nil)
	r.Creds = creds

Manager collapses concurrent refreshes: when several in-flight requests
observe the same expired credential at once, a single refresh call is
made and all of them share its result.
*/
package credential
