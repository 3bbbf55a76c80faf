// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/fixtures"
	"github.com/bitmark-inc/mintd/messagebus"
	"github.com/bitmark-inc/mintd/phase"
	"github.com/bitmark-inc/mintd/sale"
	"github.com/bitmark-inc/mintd/unitrecord"
)

func TestPreSaleAllocation(t *testing.T) {
	setup(t, testCap, testReservationCap, testMaxPerTransaction, testInitialPrice, nil)
	defer teardown(t)

	e := sale.Get()
	grant(t, fixtures.StrangerAccount, 3)
	err := e.SetPhase(fixtures.BuyerAccount, phase.PreSale)
	if nil != err {
		t.Fatalf("set phase error: %s", err)
	}

	// first purchase takes two units of the quota of three
	unitIds, err := e.PreSaleIssue(fixtures.StrangerAccount, 2, 2*testInitialPrice)
	if nil != err {
		t.Fatalf("pre-sale issue error: %s", err)
	}
	if !reflect.DeepEqual([]uint64{0, 1}, unitIds) {
		t.Fatalf("unit ids: %v  expected: %v", unitIds, []uint64{0, 1})
	}

	remaining, err := e.Allocation(fixtures.StrangerAccount)
	if nil != err {
		t.Fatalf("allocation error: %s", err)
	}
	if 1 != remaining {
		t.Errorf("remaining: %d  expected: %d", remaining, 1)
	}

	// two more exceed the remaining quota of one
	_, err = e.PreSaleIssue(fixtures.StrangerAccount, 2, 2*testInitialPrice)
	if fault.InsufficientAllocation != err {
		t.Fatalf("unexpected pre-sale error: %v", err)
	}
	remaining, err = e.Allocation(fixtures.StrangerAccount)
	if nil != err {
		t.Fatalf("allocation error: %s", err)
	}
	if 1 != remaining {
		t.Errorf("remaining: %d  expected: %d", remaining, 1)
	}

	// the last unit drains the quota and removes the entry
	unitIds, err = e.PreSaleIssue(fixtures.StrangerAccount, 1, testInitialPrice)
	if nil != err {
		t.Fatalf("pre-sale issue error: %s", err)
	}
	if !reflect.DeepEqual([]uint64{2}, unitIds) {
		t.Fatalf("unit ids: %v  expected: %v", unitIds, []uint64{2})
	}
	_, err = e.Allocation(fixtures.StrangerAccount)
	if fault.AllocationNotConfigured != err {
		t.Fatalf("unexpected allocation error: %v", err)
	}

	// an exhausted quota never replenishes
	_, err = e.PreSaleIssue(fixtures.StrangerAccount, 1, testInitialPrice)
	if fault.InsufficientAllocation != err {
		t.Fatalf("unexpected pre-sale error: %v", err)
	}

	info := e.Info()
	if 3 != info.Issued {
		t.Errorf("issued: %d  expected: %d", info.Issued, 3)
	}
	if 3*testInitialPrice != info.Custody {
		t.Errorf("custody: %d  expected: %d", info.Custody, 3*testInitialPrice)
	}

	// the stored record carries the issue details
	issue, err := e.Unit(1)
	if nil != err {
		t.Fatalf("unit error: %s", err)
	}
	if 1 != issue.Id {
		t.Errorf("id: %d  expected: %d", issue.Id, 1)
	}
	if fixtures.StrangerAccount.String() != issue.Owner.String() {
		t.Errorf("owner: %s  expected: %s", issue.Owner, fixtures.StrangerAccount)
	}
	if unitrecord.PreSaleOrigin != issue.Origin {
		t.Errorf("origin: %s  expected: %s", issue.Origin, unitrecord.PreSaleOrigin)
	}
	if testInitialPrice != issue.Price {
		t.Errorf("price: %d  expected: %d", issue.Price, testInitialPrice)
	}
	if 0 == issue.Timestamp {
		t.Error("expected a non-zero timestamp")
	}

	owner, err := e.OwnerOf(2)
	if nil != err {
		t.Fatalf("owner of error: %s", err)
	}
	if fixtures.StrangerAccount.String() != owner.String() {
		t.Errorf("owner: %s  expected: %s", owner, fixtures.StrangerAccount)
	}
}

func TestPreSalePayment(t *testing.T) {
	setup(t, testCap, testReservationCap, testMaxPerTransaction, testInitialPrice, nil)
	defer teardown(t)

	e := sale.Get()
	err := e.SetPhase(fixtures.BuyerAccount, phase.PreSale)
	if nil != err {
		t.Fatalf("set phase error: %s", err)
	}

	// the payment check precedes the allocation lookup, so an unpaid
	// caller without any quota still sees the payment error
	_, err = e.PreSaleIssue(fixtures.StrangerAccount, 2, 2*testInitialPrice-1)
	if fault.InsufficientPayment != err {
		t.Fatalf("unexpected pre-sale error: %v", err)
	}

	grant(t, fixtures.StrangerAccount, 5)

	_, err = e.PreSaleIssue(fixtures.StrangerAccount, 2, 2*testInitialPrice-1)
	if fault.InsufficientPayment != err {
		t.Fatalf("unexpected pre-sale error: %v", err)
	}

	// a failed payment leaves the quota untouched
	remaining, err := e.Allocation(fixtures.StrangerAccount)
	if nil != err {
		t.Fatalf("allocation error: %s", err)
	}
	if 5 != remaining {
		t.Errorf("remaining: %d  expected: %d", remaining, 5)
	}

	// overpayment is accepted and credited in full
	_, err = e.PreSaleIssue(fixtures.StrangerAccount, 1, 3*testInitialPrice)
	if nil != err {
		t.Fatalf("pre-sale issue error: %s", err)
	}
	info := e.Info()
	if 3*testInitialPrice != info.Custody {
		t.Errorf("custody: %d  expected: %d", info.Custody, 3*testInitialPrice)
	}
}

// a payment that would wrap the custody balance aborts the whole
// issue, leaving supply and the held balance unchanged
func TestPaymentOverflow(t *testing.T) {
	setup(t, testCap, testReservationCap, testMaxPerTransaction, testInitialPrice, nil)
	defer teardown(t)

	e := sale.Get()
	err := e.SetPhase(fixtures.BuyerAccount, phase.PublicSale)
	if nil != err {
		t.Fatalf("set phase error: %s", err)
	}

	_, err = e.PublicIssue(fixtures.StrangerAccount, 1, math.MaxUint64)
	if nil != err {
		t.Fatalf("public issue error: %s", err)
	}

	_, err = e.PublicIssue(fixtures.StrangerAccount, 1, 2*testInitialPrice)
	if fault.CustodyOverflow != err {
		t.Fatalf("unexpected public issue error: %v", err)
	}

	info := e.Info()
	if 1 != info.Issued {
		t.Errorf("issued: %d  expected: %d", info.Issued, 1)
	}
	if uint64(math.MaxUint64) != info.Custody {
		t.Errorf("custody: %d  expected: %d", info.Custody, uint64(math.MaxUint64))
	}
}

func TestPublicIssueLimits(t *testing.T) {
	classifier := func(caller *account.Account) bool {
		return fixtures.CollectorAccount.String() == caller.String()
	}
	setup(t, testCap, testReservationCap, testMaxPerTransaction, testInitialPrice, classifier)
	defer teardown(t)

	e := sale.Get()
	err := e.SetPhase(fixtures.BuyerAccount, phase.PublicSale)
	if nil != err {
		t.Fatalf("set phase error: %s", err)
	}

	// the limit check precedes the payment check, an unpaid request
	// over the limit reports the limit
	_, err = e.PublicIssue(fixtures.StrangerAccount, testMaxPerTransaction+1, 0)
	if fault.PerTransactionLimitExceeded != err {
		t.Fatalf("unexpected public error: %v", err)
	}

	// the payment check precedes caller classification
	_, err = e.PublicIssue(fixtures.CollectorAccount, 2, 0)
	if fault.InsufficientPayment != err {
		t.Fatalf("unexpected public error: %v", err)
	}

	// flagged programmatic callers are barred even when paying
	_, err = e.PublicIssue(fixtures.CollectorAccount, 2, 2*testInitialPrice)
	if fault.ContractCallerForbidden != err {
		t.Fatalf("unexpected public error: %v", err)
	}

	// a full-limit purchase by a direct caller succeeds
	unitIds, err := e.PublicIssue(fixtures.StrangerAccount, testMaxPerTransaction, testMaxPerTransaction*testInitialPrice)
	if nil != err {
		t.Fatalf("public issue error: %s", err)
	}
	if !reflect.DeepEqual([]uint64{0, 1, 2, 3, 4, 5}, unitIds) {
		t.Fatalf("unit ids: %v  expected: %v", unitIds, []uint64{0, 1, 2, 3, 4, 5})
	}

	issue, err := e.Unit(5)
	if nil != err {
		t.Fatalf("unit error: %s", err)
	}
	if unitrecord.PublicSaleOrigin != issue.Origin {
		t.Errorf("origin: %s  expected: %s", issue.Origin, unitrecord.PublicSaleOrigin)
	}
}

func TestReserveThenPublic(t *testing.T) {
	setup(t, 1000, 100, 900, testInitialPrice, nil)
	defer teardown(t)

	e := sale.Get()

	// reservations work in any phase including paused
	unitIds, err := e.ReserveForRecipient(fixtures.BuyerAccount, fixtures.CollectorAccount, 100)
	if nil != err {
		t.Fatalf("reserve error: %s", err)
	}
	if 100 != len(unitIds) {
		t.Fatalf("unit ids: %d  expected: %d", len(unitIds), 100)
	}
	if 0 != unitIds[0] || 99 != unitIds[99] {
		t.Fatalf("unit id range: [%d, %d]  expected: [0, 99]", unitIds[0], unitIds[99])
	}

	// the reservation pool is exhausted
	_, err = e.ReserveForRecipient(fixtures.BuyerAccount, fixtures.CollectorAccount, 1)
	if fault.ReservationExceeded != err {
		t.Fatalf("unexpected reserve error: %v", err)
	}

	// reserved grants cost nothing
	issue, err := e.Unit(0)
	if nil != err {
		t.Fatalf("unit error: %s", err)
	}
	if unitrecord.ReservedOrigin != issue.Origin {
		t.Errorf("origin: %s  expected: %s", issue.Origin, unitrecord.ReservedOrigin)
	}
	if 0 != issue.Price {
		t.Errorf("price: %d  expected: %d", issue.Price, 0)
	}
	info := e.Info()
	if 0 != info.Custody {
		t.Errorf("custody: %d  expected: %d", info.Custody, 0)
	}
	if 100 != info.Issued || 100 != info.Reserved {
		t.Errorf("issued: %d  reserved: %d  expected: 100 and 100", info.Issued, info.Reserved)
	}

	// the rest of the cap remains for the public
	err = e.SetPhase(fixtures.BuyerAccount, phase.PublicSale)
	if nil != err {
		t.Fatalf("set phase error: %s", err)
	}
	unitIds, err = e.PublicIssue(fixtures.StrangerAccount, 900, 900*testInitialPrice)
	if nil != err {
		t.Fatalf("public issue error: %s", err)
	}
	if 100 != unitIds[0] || 999 != unitIds[899] {
		t.Fatalf("unit id range: [%d, %d]  expected: [100, 999]", unitIds[0], unitIds[899])
	}

	// the cap is hard
	_, err = e.PublicIssue(fixtures.StrangerAccount, 1, testInitialPrice)
	if fault.SupplyExceeded != err {
		t.Fatalf("unexpected public error: %v", err)
	}
	info = e.Info()
	if 1000 != info.Issued {
		t.Errorf("issued: %d  expected: %d", info.Issued, 1000)
	}
}

func TestReserveValidation(t *testing.T) {
	setup(t, testCap, testReservationCap, testMaxPerTransaction, testInitialPrice, nil)
	defer teardown(t)

	e := sale.Get()

	// the collector is an admin but not a project admin
	_, err := e.ReserveForRecipient(fixtures.CollectorAccount, fixtures.StrangerAccount, 1)
	if fault.Unauthorized != err {
		t.Fatalf("unexpected reserve error: %v", err)
	}

	_, err = e.ReserveForRecipient(fixtures.BuyerAccount, nil, 1)
	if fault.InvalidRecipient != err {
		t.Fatalf("unexpected reserve error: %v", err)
	}

	_, err = e.ReserveForRecipient(fixtures.BuyerAccount, fixtures.StrangerAccount, 0)
	if fault.InvalidCount != err {
		t.Fatalf("unexpected reserve error: %v", err)
	}

	info := e.Info()
	if 0 != info.Issued || 0 != info.Reserved {
		t.Errorf("issued: %d  reserved: %d  expected: 0 and 0", info.Issued, info.Reserved)
	}
}

func TestBroadcasts(t *testing.T) {
	setup(t, testCap, testReservationCap, testMaxPerTransaction, testInitialPrice, nil)
	defer teardown(t)

	e := sale.Get()
	err := e.SetPhase(fixtures.BuyerAccount, phase.PublicSale)
	if nil != err {
		t.Fatalf("set phase error: %s", err)
	}

	queue := messagebus.Bus.Broadcast.Chan(10)
	defer messagebus.Bus.Broadcast.Release()
	drainStale(queue)

	unitIds, err := e.PublicIssue(fixtures.StrangerAccount, 2, 2*testInitialPrice)
	if nil != err {
		t.Fatalf("public issue error: %s", err)
	}

	for i, unitId := range unitIds {
		m := receive(t, queue)
		if "minted" != m.Command {
			t.Fatalf("message %d command: %q  expected: %q", i, m.Command, "minted")
		}
		if 3 != len(m.Parameters) {
			t.Fatalf("message %d parameters: %d  expected: %d", i, len(m.Parameters), 3)
		}
		idKey := make([]byte, 8)
		binary.BigEndian.PutUint64(idKey, unitId)
		if !bytes.Equal(idKey, m.Parameters[0]) {
			t.Fatalf("message %d unit id: %x  expected: %x", i, m.Parameters[0], idKey)
		}
		record, _, err := unitrecord.Packed(m.Parameters[1]).Unpack(true)
		if nil != err {
			t.Fatalf("message %d record unpack error: %s", i, err)
		}
		issue, ok := record.(*unitrecord.UnitIssue)
		if !ok {
			t.Fatalf("message %d record: %v  expected an issue", i, record)
		}
		if unitId != issue.Id {
			t.Fatalf("message %d id: %d  expected: %d", i, issue.Id, unitId)
		}
		digest := unitrecord.Packed(m.Parameters[1]).MakeDigest()
		if !bytes.Equal(digest.Bytes(), m.Parameters[2]) {
			t.Fatalf("message %d digest: %x  expected: %x", i, m.Parameters[2], digest.Bytes())
		}
	}

	// a price change announces the new price
	err = e.SetPrice(fixtures.BuyerAccount, 7777)
	if nil != err {
		t.Fatalf("set price error: %s", err)
	}
	m := receive(t, queue)
	if "price" != m.Command {
		t.Fatalf("command: %q  expected: %q", m.Command, "price")
	}
	priceKey := make([]byte, 8)
	binary.BigEndian.PutUint64(priceKey, 7777)
	if !bytes.Equal(priceKey, m.Parameters[0]) {
		t.Fatalf("price: %x  expected: %x", m.Parameters[0], priceKey)
	}
}

// wait for one broadcast message
func receive(t *testing.T, queue <-chan messagebus.Message) messagebus.Message {
	select {
	case m := <-queue:
		return m
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
		return messagebus.Message{}
	}
}

// let in-flight fan-out from earlier operations settle, then discard
// anything already queued
func drainStale(queue <-chan messagebus.Message) {
	time.Sleep(20 * time.Millisecond)
drain:
	for {
		select {
		case <-queue:
		default:
			break drain
		}
	}
}
