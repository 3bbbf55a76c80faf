// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package phase

import (
	"github.com/bitmark-inc/mintd/fault"
)

// Uint64 - convert the phase to a number
func (phase Phase) Uint64() uint64 {
	return uint64(phase)
}

// FromUint64 - convert a number to a phase
func FromUint64(n uint64) (Phase, error) {
	if Phase(n) < maximumValue {
		return Phase(n), nil
	}
	return Paused, fault.InvalidPhase
}
