// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"testing"

	"github.com/bitmark-inc/mintd/counter"
)

// simulate connections arriving and leaving
func TestConnectionCount(t *testing.T) {

	var connections counter.Counter

	if !connections.IsZero() {
		t.Errorf("count is not zero at start: %d", connections.Uint64())
	}

	for i := 0; i < 5; i += 1 {
		connections.Increment()
	}

	if 5 != connections.Uint64() {
		t.Errorf("count: %d  expected: %d", connections.Uint64(), 5)
	}

	if 4 != connections.Decrement() {
		t.Errorf("count: %d  expected: %d", connections.Uint64(), 4)
	}

	for i := 0; i < 4; i += 1 {
		connections.Decrement()
	}

	if !connections.IsZero() {
		t.Errorf("count did not return to zero: %d", connections.Uint64())
	}

	// an unpaired Decrement wraps, i.e. twos complement -1
	connections.Decrement()
	if ^uint64(0) != connections.Uint64() {
		t.Errorf("count did not wrap: %d", connections.Uint64())
	}
}
