// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package phase_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/phase"
)

type phaseTest struct {
	str string
	p   phase.Phase
	j   string
}

var valid = []phaseTest{
	{"paused", phase.Paused, `"paused"`},
	{"Paused", phase.Paused, `"paused"`},
	{"PAUSED", phase.Paused, `"paused"`},
	{"presale", phase.PreSale, `"presale"`},
	{"PreSale", phase.PreSale, `"presale"`},
	{"pre-sale", phase.PreSale, `"presale"`},
	{"public", phase.PublicSale, `"public"`},
	{"Public", phase.PublicSale, `"public"`},
	{"PublicSale", phase.PublicSale, `"public"`},
	{"public-sale", phase.PublicSale, `"public"`},
}

var invalid = []string{
	"presail",
	"null",
	"closed",
}

func TestValidString(t *testing.T) {
	for index, test := range valid {

		var p phase.Phase
		n, err := fmt.Sscan(test.str, &p)
		if nil != err {
			t.Fatalf("%d: string to phase error: %s", index, err)
		}

		if 1 != n {
			t.Fatalf("%d: scanned %d items expected to scan 1", index, n)
		}

		if p != test.p {
			t.Errorf("%d: %q converted to: %#v  expected: %#v", index, test.str, p, test.p)
		}
	}
}

func TestInvalidString(t *testing.T) {
	for index, test := range invalid {

		var p phase.Phase
		n, err := fmt.Sscan(test, &p)
		if fault.InvalidPhase != err {
			t.Fatalf("%d: string to phase error: %s", index, err)
		}

		if 0 != n {
			t.Fatalf("%d: scanned %d items expected to scan 0(zero)", index, n)
		}

	}
}

func TestMarshalling(t *testing.T) {
	for index, test := range valid {

		buffer, err := json.Marshal(test.p)
		if nil != err {
			t.Fatalf("%d: Marshal JSON error: %s", index, err)
		}

		if test.j != string(buffer) {
			t.Errorf("%d: Marshal JSON expected: %q  actual: %q", index, test.j, buffer)
		}

	}
}

func TestUnmarshalling(t *testing.T) {
	for index, test := range valid {

		buffer := []byte(`"` + test.str + `"`)
		var p phase.Phase
		err := json.Unmarshal(buffer, &p)
		if nil != err {
			t.Fatalf("%d: Unmarshal JSON error: %s", index, err)
		}

		if test.p != p {
			t.Errorf("%d: Unmarshal JSON expected: %#v  actual: %#v", index, test.p, p)
		}

	}
}

func TestConversion(t *testing.T) {
	for i := uint64(0); i < uint64(phase.Count); i += 1 {
		p, err := phase.FromUint64(i)
		if nil != err {
			t.Fatalf("%d: number to phase error: %s", i, err)
		}
		if p.Uint64() != i {
			t.Errorf("%d: converted to: %#v", i, p)
		}
	}

	_, err := phase.FromUint64(uint64(phase.Count))
	if fault.InvalidPhase != err {
		t.Errorf("out of range phase error: %s  expected: %s", err, fault.InvalidPhase)
	}
}
