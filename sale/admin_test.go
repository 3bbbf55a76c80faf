// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale_test

import (
	"testing"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/fixtures"
	"github.com/bitmark-inc/mintd/phase"
	"github.com/bitmark-inc/mintd/sale"
)

func TestSetPhaseAuthority(t *testing.T) {
	setup(t, testCap, testReservationCap, testMaxPerTransaction, testInitialPrice, nil)
	defer teardown(t)

	e := sale.Get()

	// the stranger holds no authority at all and the collector is an
	// admin but not a project admin
	err := e.SetPhase(fixtures.StrangerAccount, phase.PreSale)
	if fault.Unauthorized != err {
		t.Fatalf("unexpected set phase error: %v", err)
	}
	err = e.SetPhase(fixtures.CollectorAccount, phase.PreSale)
	if fault.Unauthorized != err {
		t.Fatalf("unexpected set phase error: %v", err)
	}
	if phase.Paused != e.CurrentPhase() {
		t.Fatalf("phase: %s  expected: %s", e.CurrentPhase(), phase.Paused)
	}

	// the operator is seeded into both authority sets
	err = e.SetPhase(fixtures.OperatorAccount, phase.PreSale)
	if nil != err {
		t.Fatalf("set phase error: %s", err)
	}
	if phase.PreSale != e.CurrentPhase() {
		t.Fatalf("phase: %s  expected: %s", e.CurrentPhase(), phase.PreSale)
	}

	err = e.SetPhase(fixtures.BuyerAccount, phase.Phase(77))
	if fault.InvalidPhase != err {
		t.Fatalf("unexpected set phase error: %v", err)
	}
}

func TestSetAllocationValidation(t *testing.T) {
	setup(t, testCap, testReservationCap, testMaxPerTransaction, testInitialPrice, nil)
	defer teardown(t)

	e := sale.Get()

	err := e.SetAllocation(fixtures.StrangerAccount, []*account.Account{fixtures.StrangerAccount}, 3)
	if fault.Unauthorized != err {
		t.Fatalf("unexpected set allocation error: %v", err)
	}

	err = e.SetAllocation(fixtures.BuyerAccount, nil, 3)
	if fault.MissingParameters != err {
		t.Fatalf("unexpected set allocation error: %v", err)
	}

	err = e.SetAllocation(fixtures.BuyerAccount, []*account.Account{fixtures.StrangerAccount, nil}, 3)
	if fault.InvalidRecipient != err {
		t.Fatalf("unexpected set allocation error: %v", err)
	}

	// a rejected list leaves no partial grants behind
	_, err = e.Allocation(fixtures.StrangerAccount)
	if fault.AllocationNotConfigured != err {
		t.Fatalf("unexpected allocation error: %v", err)
	}

	// a later grant overwrites, a zero grant removes
	err = e.SetAllocation(fixtures.BuyerAccount, []*account.Account{fixtures.StrangerAccount, fixtures.CollectorAccount}, 10)
	if nil != err {
		t.Fatalf("set allocation error: %s", err)
	}
	err = e.SetAllocation(fixtures.BuyerAccount, []*account.Account{fixtures.StrangerAccount}, 4)
	if nil != err {
		t.Fatalf("set allocation error: %s", err)
	}
	remaining, err := e.Allocation(fixtures.StrangerAccount)
	if nil != err {
		t.Fatalf("allocation error: %s", err)
	}
	if 4 != remaining {
		t.Errorf("remaining: %d  expected: %d", remaining, 4)
	}
	remaining, err = e.Allocation(fixtures.CollectorAccount)
	if nil != err {
		t.Fatalf("allocation error: %s", err)
	}
	if 10 != remaining {
		t.Errorf("remaining: %d  expected: %d", remaining, 10)
	}
	err = e.SetAllocation(fixtures.BuyerAccount, []*account.Account{fixtures.CollectorAccount}, 0)
	if nil != err {
		t.Fatalf("set allocation error: %s", err)
	}
	_, err = e.Allocation(fixtures.CollectorAccount)
	if fault.AllocationNotConfigured != err {
		t.Fatalf("unexpected allocation error: %v", err)
	}
}

func TestProvenance(t *testing.T) {
	setup(t, testCap, testReservationCap, testMaxPerTransaction, testInitialPrice, nil)
	defer teardown(t)

	e := sale.Get()

	if "" != e.ProvenanceHash() {
		t.Fatalf("provenance: %q  expected empty", e.ProvenanceHash())
	}

	err := e.SetProvenance(fixtures.StrangerAccount, "5bf3c4d2e1aa7c1969fa3d51f25ad384a93f8a5e6170a11f23f5a0f34396a741")
	if fault.Unauthorized != err {
		t.Fatalf("unexpected set provenance error: %v", err)
	}

	err = e.SetProvenance(fixtures.BuyerAccount, "")
	if fault.MissingParameters != err {
		t.Fatalf("unexpected set provenance error: %v", err)
	}

	err = e.SetProvenance(fixtures.BuyerAccount, "5bf3c4d2e1aa7c1969fa3d51f25ad384a93f8a5e6170a11f23f5a0f34396a741")
	if nil != err {
		t.Fatalf("set provenance error: %s", err)
	}
	if "5bf3c4d2e1aa7c1969fa3d51f25ad384a93f8a5e6170a11f23f5a0f34396a741" != e.ProvenanceHash() {
		t.Fatalf("provenance: %q", e.ProvenanceHash())
	}

	// write-once, even for the same value again
	err = e.SetProvenance(fixtures.BuyerAccount, "5bf3c4d2e1aa7c1969fa3d51f25ad384a93f8a5e6170a11f23f5a0f34396a741")
	if fault.AlreadySet != err {
		t.Fatalf("unexpected set provenance error: %v", err)
	}
	err = e.SetProvenance(fixtures.OperatorAccount, "0000000000000000000000000000000000000000000000000000000000000000")
	if fault.AlreadySet != err {
		t.Fatalf("unexpected set provenance error: %v", err)
	}
}

func TestUnitURIs(t *testing.T) {
	setup(t, testCap, testReservationCap, testMaxPerTransaction, testInitialPrice, nil)
	defer teardown(t)

	e := sale.Get()

	err := e.SetBaseURI(fixtures.BuyerAccount, "https://sale.example/meta/")
	if nil != err {
		t.Fatalf("set base URI error: %s", err)
	}

	// no units issued yet
	_, err = e.UnitURI(0)
	if fault.UnitNotFound != err {
		t.Fatalf("unexpected unit URI error: %v", err)
	}
	err = e.SetUnitURI(fixtures.BuyerAccount, 0, "ipfs://QmUnitZero")
	if fault.UnitNotFound != err {
		t.Fatalf("unexpected set unit URI error: %v", err)
	}

	_, err = e.ReserveForRecipient(fixtures.BuyerAccount, fixtures.CollectorAccount, 3)
	if nil != err {
		t.Fatalf("reserve error: %s", err)
	}

	uri, err := e.UnitURI(1)
	if nil != err {
		t.Fatalf("unit URI error: %s", err)
	}
	if "https://sale.example/meta/1.json" != uri {
		t.Errorf("URI: %q  expected: %q", uri, "https://sale.example/meta/1.json")
	}

	// an override replaces the fallback for one unit only
	err = e.SetUnitURI(fixtures.BuyerAccount, 1, "ipfs://QmUnitOne")
	if nil != err {
		t.Fatalf("set unit URI error: %s", err)
	}
	uri, err = e.UnitURI(1)
	if nil != err {
		t.Fatalf("unit URI error: %s", err)
	}
	if "ipfs://QmUnitOne" != uri {
		t.Errorf("URI: %q  expected: %q", uri, "ipfs://QmUnitOne")
	}
	uri, err = e.UnitURI(2)
	if nil != err {
		t.Fatalf("unit URI error: %s", err)
	}
	if "https://sale.example/meta/2.json" != uri {
		t.Errorf("URI: %q  expected: %q", uri, "https://sale.example/meta/2.json")
	}

	// a base change rewrites fallbacks but never overrides
	err = e.SetBaseURI(fixtures.BuyerAccount, "https://cdn.example/units/")
	if nil != err {
		t.Fatalf("set base URI error: %s", err)
	}
	uri, err = e.UnitURI(1)
	if nil != err {
		t.Fatalf("unit URI error: %s", err)
	}
	if "ipfs://QmUnitOne" != uri {
		t.Errorf("URI: %q  expected: %q", uri, "ipfs://QmUnitOne")
	}
	uri, err = e.UnitURI(2)
	if nil != err {
		t.Fatalf("unit URI error: %s", err)
	}
	if "https://cdn.example/units/2.json" != uri {
		t.Errorf("URI: %q  expected: %q", uri, "https://cdn.example/units/2.json")
	}

	// an empty override restores the fallback
	err = e.SetUnitURI(fixtures.BuyerAccount, 1, "")
	if nil != err {
		t.Fatalf("set unit URI error: %s", err)
	}
	uri, err = e.UnitURI(1)
	if nil != err {
		t.Fatalf("unit URI error: %s", err)
	}
	if "https://cdn.example/units/1.json" != uri {
		t.Errorf("URI: %q  expected: %q", uri, "https://cdn.example/units/1.json")
	}

	err = e.SetUnitURI(fixtures.StrangerAccount, 1, "ipfs://QmSneaky")
	if fault.Unauthorized != err {
		t.Fatalf("unexpected set unit URI error: %v", err)
	}
}

func TestWithdraw(t *testing.T) {
	setup(t, testCap, testReservationCap, testMaxPerTransaction, testInitialPrice, nil)
	defer teardown(t)

	e := sale.Get()
	err := e.SetPhase(fixtures.BuyerAccount, phase.PublicSale)
	if nil != err {
		t.Fatalf("set phase error: %s", err)
	}
	_, err = e.PublicIssue(fixtures.StrangerAccount, 4, 4*testInitialPrice)
	if nil != err {
		t.Fatalf("public issue error: %s", err)
	}

	// the buyer is a project admin but withdraw needs the admin set
	err = e.WithdrawFunds(fixtures.BuyerAccount, fixtures.BuyerAccount, 1)
	if fault.Unauthorized != err {
		t.Fatalf("unexpected withdraw error: %v", err)
	}

	err = e.WithdrawFunds(fixtures.CollectorAccount, nil, 1)
	if fault.InvalidRecipient != err {
		t.Fatalf("unexpected withdraw error: %v", err)
	}
	err = e.WithdrawFunds(fixtures.CollectorAccount, fixtures.CollectorAccount, 0)
	if fault.InvalidCount != err {
		t.Fatalf("unexpected withdraw error: %v", err)
	}

	// more than the balance fails and changes nothing
	err = e.WithdrawFunds(fixtures.CollectorAccount, fixtures.CollectorAccount, 4*testInitialPrice+1)
	if fault.TransferFailed != err {
		t.Fatalf("unexpected withdraw error: %v", err)
	}
	info := e.Info()
	if 4*testInitialPrice != info.Custody {
		t.Errorf("custody: %d  expected: %d", info.Custody, 4*testInitialPrice)
	}

	err = e.WithdrawFunds(fixtures.CollectorAccount, fixtures.CollectorAccount, 3*testInitialPrice)
	if nil != err {
		t.Fatalf("withdraw error: %s", err)
	}
	info = e.Info()
	if testInitialPrice != info.Custody {
		t.Errorf("custody: %d  expected: %d", info.Custody, testInitialPrice)
	}

	// the admin-capable operator can drain the rest
	err = e.WithdrawFunds(fixtures.OperatorAccount, fixtures.CollectorAccount, testInitialPrice)
	if nil != err {
		t.Fatalf("withdraw error: %s", err)
	}
	info = e.Info()
	if 0 != info.Custody {
		t.Errorf("custody: %d  expected: %d", info.Custody, 0)
	}
}
