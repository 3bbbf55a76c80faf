// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package phase

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/fault"
)

// Phase - sale phase enumeration
type Phase uint64

// possible phase values
//
// Paused is the initial state and is a valid settable phase,
// not a pseudo value like a currency "nothing"
const (
	Paused       Phase = iota // this must be the first value
	PreSale      Phase = iota
	PublicSale   Phase = iota
	maximumValue Phase = iota // this must be the last value
	First        Phase = Paused
	Last         Phase = maximumValue - 1
	Count        int   = int(maximumValue) // count of phases
)

// internal conversion
func toString(p Phase) ([]byte, error) {
	switch p {
	case Paused:
		return []byte("paused"), nil
	case PreSale:
		return []byte("presale"), nil
	case PublicSale:
		return []byte("public"), nil
	default:
		return []byte{}, fault.InvalidPhase
	}
}

// convert a string to a phase
func fromString(in string) (Phase, error) {
	switch strings.ToLower(in) {
	case "paused":
		return Paused, nil
	case "presale", "pre-sale":
		return PreSale, nil
	case "public", "publicsale", "public-sale":
		return PublicSale, nil
	default:
		return Paused, fault.InvalidPhase
	}
}

// FromString - parse a phase name
func FromString(in string) (Phase, error) {
	return fromString(in)
}

// String - convert a phase to its string name
func (phase Phase) String() string {
	s, err := toString(phase)
	if nil != err {
		logger.Panicf("invalid phase enumeration: %d", phase)
	}
	return string(s)
}

// GoString - convert both enum value and name, for debugging
func (phase Phase) GoString() string {
	return fmt.Sprintf("<Phase#%d:%q>", phase, phase.String())
}

// Scan - convert a phase string
func (phase *Phase) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= 'A' && c <= 'Z' {
			return true
		}
		if c >= 'a' && c <= 'z' {
			return true
		}
		if '-' == c {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	parsed, err := fromString(string(token))
	if nil != err {
		return err
	}

	*phase = parsed
	return nil
}

// IsValid - phase is valid if in range of First to Last
func (phase Phase) IsValid() bool {
	return phase >= First && phase <= Last
}

// Index - convert a valid phase to a zero based array index
func (phase Phase) Index() int {
	if !phase.IsValid() {
		logger.Panicf("phase.Index: invalid phase: %d", phase)
	}
	return int(phase - First) // zero based index
}
