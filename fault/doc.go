// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package fault categorizes transport faults raised while executing a
request, so that callers can distinguish a timeout from a
connection-level failure without unwrapping error chains by hand.

	switch fault.Categorize(err) {
	case fault.Timeout:
		...
	case fault.ConnRefused, fault.ConnReset:
		...
	}
*/
package fault
