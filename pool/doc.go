// Copyright 2026 The reauth Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package pool provides the worker pool on which requests, credential
refreshes, and replays execute. A Pool is a caller-owned handle:
construct one to control concurrency (for example New(1) to serialize
every call made through it), or use the process-wide Default instance.

	p := pool.New(8)
	defer p.Close()
	client := &reauth.Client{Pool: p}
*/
package pool
