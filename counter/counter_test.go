// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"testing"

	"github.com/assetledger/registryd/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()

	if c1.Uint64() != 3 {
		t.Errorf("counter value: %d  expected: 3", c1.Uint64())
	}

	c1.Decrement()
	c1.Decrement()

	if c1.Uint64() != 1 {
		t.Errorf("counter value: %d  expected: 1", c1.Uint64())
	}

	c1.Decrement()
	if !c1.IsZero() {
		t.Errorf("counter is not zero after matching decrements: %d", c1.Uint64())
	}
}
