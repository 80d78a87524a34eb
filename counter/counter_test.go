// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/staterecord/counter"
)

func TestAcquireRelease(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "counter is not zero at start")

	for i := 0; i < 3; i += 1 {
		assert.True(t, c.Acquire(3), "acquire %d", i)
	}
	assert.Equal(t, uint64(3), c.Uint64(), "wrong count")
	assert.False(t, c.Acquire(3), "acquired past limit")
	assert.Equal(t, uint64(3), c.Uint64(), "failed acquire changed count")

	c.Release()
	assert.Equal(t, uint64(2), c.Uint64(), "wrong count after release")
	assert.True(t, c.Acquire(3), "slot not reusable")

	c.Release()
	c.Release()
	c.Release()
	assert.True(t, c.IsZero(), "counter did not return to zero")

	// no underflow
	c.Release()
	assert.True(t, c.IsZero(), "counter underflowed")
}

func TestAcquireConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const limit = 10
	acquired := make(chan struct{}, 100)

	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(limit) {
				acquired <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(acquired)

	assert.Equal(t, limit, len(acquired), "wrong number of slots taken")
	assert.Equal(t, uint64(limit), c.Uint64(), "wrong count")
}
