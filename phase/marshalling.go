// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package phase

// MarshalText - convert a phase into JSON
func (phase Phase) MarshalText() ([]byte, error) {
	return []byte(phase.String()), nil
}

// UnmarshalText - convert phase string to a phase enumeration value from JSON
func (phase *Phase) UnmarshalText(s []byte) error {
	p, err := fromString(string(s))
	if nil != err {
		return err
	}
	*phase = p
	return nil
}
