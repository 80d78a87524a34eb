// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - number of open client connections
//
// safe for concurrent use, the zero value is an empty counter
type Counter uint64

// Acquire - take one slot if fewer than limit are in use
//
// returns false and leaves the counter unchanged when full
func (c *Counter) Acquire(limit uint64) bool {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n+1) {
			return true
		}
	}
}

// Release - return a slot taken by Acquire
//
// releasing an empty counter is a no-op
func (c *Counter) Release() {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if 0 == n {
			return
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n-1) {
			return
		}
	}
}

// Uint64 - slots currently in use
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - check if no slots are in use
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
