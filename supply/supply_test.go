// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package supply_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/fixtures"
	"github.com/bitmark-inc/mintd/storage"
	"github.com/bitmark-inc/mintd/supply"
)

// test database file
const (
	databaseFileName = "test"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName + "-ledger.leveldb")
	os.RemoveAll(databaseFileName + "-index.leveldb")
}

// configure for testing
func setup(t *testing.T, cap uint64, reservationCap uint64) {
	fixtures.SetupTestLogger()
	removeFiles()
	_, err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = supply.Initialise(storage.Pool.SaleState, cap, reservationCap)
	if nil != err {
		t.Fatalf("supply initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	supply.Finalise()
	storage.Finalise()
	removeFiles()
	fixtures.TeardownTestLogger()
}

func TestIssue(t *testing.T) {
	setup(t, 10, 3)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}

	firstId, err := supply.Issue(trx, 4)
	if nil != err {
		t.Fatalf("issue error: %s", err)
	}
	if 0 != firstId {
		t.Errorf("first id: %d  expected: %d", firstId, 0)
	}

	// a second issue inside the same transaction sees the staged count
	firstId, err = supply.Issue(trx, 4)
	if nil != err {
		t.Fatalf("issue error: %s", err)
	}
	if 4 != firstId {
		t.Errorf("first id: %d  expected: %d", firstId, 4)
	}

	// 8 issued, 3 more would pass the cap
	_, err = supply.Issue(trx, 3)
	if fault.SupplyExceeded != err {
		t.Fatalf("unexpected issue error: %v", err)
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if 8 != supply.Issued() {
		t.Errorf("issued: %d  expected: %d", supply.Issued(), 8)
	}

	// an aborted transaction must leave the counter untouched
	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	firstId, err = supply.Issue(trx, 2)
	if nil != err {
		t.Fatalf("issue error: %s", err)
	}
	if 8 != firstId {
		t.Errorf("first id: %d  expected: %d", firstId, 8)
	}
	trx.Abort()

	if 8 != supply.Issued() {
		t.Errorf("issued after abort: %d  expected: %d", supply.Issued(), 8)
	}
}

func TestIssueWholeSupply(t *testing.T) {
	setup(t, 1000, 100)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}

	firstId, err := supply.Issue(trx, 1000)
	if nil != err {
		t.Fatalf("issue error: %s", err)
	}
	if 0 != firstId {
		t.Errorf("first id: %d  expected: %d", firstId, 0)
	}

	_, err = supply.Issue(trx, 1)
	if fault.SupplyExceeded != err {
		t.Fatalf("unexpected issue error: %v", err)
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if 1000 != supply.Issued() {
		t.Errorf("issued: %d  expected: %d", supply.Issued(), 1000)
	}
}

func TestReserveAndIssue(t *testing.T) {
	setup(t, 10, 3)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}

	firstId, err := supply.ReserveAndIssue(trx, 2)
	if nil != err {
		t.Fatalf("reserve error: %s", err)
	}
	if 0 != firstId {
		t.Errorf("first id: %d  expected: %d", firstId, 0)
	}

	// 2 reserved, 2 more would pass the reservation cap
	_, err = supply.ReserveAndIssue(trx, 2)
	if fault.ReservationExceeded != err {
		t.Fatalf("unexpected reserve error: %v", err)
	}

	// reserved issues count towards the supply
	firstId, err = supply.Issue(trx, 8)
	if nil != err {
		t.Fatalf("issue error: %s", err)
	}
	if 2 != firstId {
		t.Errorf("first id: %d  expected: %d", firstId, 2)
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if 10 != supply.Issued() {
		t.Errorf("issued: %d  expected: %d", supply.Issued(), 10)
	}
	if 2 != supply.Reserved() {
		t.Errorf("reserved: %d  expected: %d", supply.Reserved(), 2)
	}

	// reservation cap still has room but the supply is exhausted
	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	_, err = supply.ReserveAndIssue(trx, 1)
	if fault.SupplyExceeded != err {
		t.Fatalf("unexpected reserve error: %v", err)
	}
	trx.Abort()
}

func TestInitialiseWithInvalidCaps(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	removeFiles()
	defer removeFiles()

	_, err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	err = supply.Initialise(storage.Pool.SaleState, 0, 0)
	if fault.InvalidCapacity != err {
		t.Fatalf("unexpected initialise error: %v", err)
	}

	err = supply.Initialise(storage.Pool.SaleState, 5, 5)
	if fault.InvalidCapacity != err {
		t.Fatalf("unexpected initialise error: %v", err)
	}

	err = supply.Initialise(nil, 5, 1)
	if fault.DatabaseIsNotSet != err {
		t.Fatalf("unexpected initialise error: %v", err)
	}
}
