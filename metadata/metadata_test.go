// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metadata_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/fixtures"
	"github.com/bitmark-inc/mintd/metadata"
	"github.com/bitmark-inc/mintd/storage"
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
func setup(t *testing.T) {
	fixtures.SetupTestLogger()
	removeFiles()
	_, err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = metadata.Initialise(storage.Pool.SaleState, storage.Pool.UnitURIs)
	if nil != err {
		t.Fatalf("metadata initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	metadata.Finalise()
	storage.Finalise()
	removeFiles()
	fixtures.TeardownTestLogger()
}

// resolution falls back to base URI + decimal id + ".json" unless an
// override exists, in either store order
func TestUnitURI(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	err = metadata.SetBaseURI(trx, "https://meta.example.com/units/")
	if nil != err {
		t.Fatalf("set base URI error: %s", err)
	}
	err = metadata.SetUnitURI(trx, 7, "ipfs://QmUnitSeven")
	if nil != err {
		t.Fatalf("set unit URI error: %s", err)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if "https://meta.example.com/units/" != metadata.BaseURI() {
		t.Errorf("base URI: %q", metadata.BaseURI())
	}

	uri := metadata.UnitURI(5)
	if "https://meta.example.com/units/5.json" != uri {
		t.Errorf("unit URI: %q", uri)
	}

	// the override wins over the fallback
	uri = metadata.UnitURI(7)
	if "ipfs://QmUnitSeven" != uri {
		t.Errorf("unit URI: %q", uri)
	}

	// a later base URI change rewrites the fallback but not the
	// override
	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	err = metadata.SetBaseURI(trx, "https://other.example.com/")
	if nil != err {
		t.Fatalf("set base URI error: %s", err)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	uri = metadata.UnitURI(5)
	if "https://other.example.com/5.json" != uri {
		t.Errorf("unit URI: %q", uri)
	}
	uri = metadata.UnitURI(7)
	if "ipfs://QmUnitSeven" != uri {
		t.Errorf("unit URI: %q", uri)
	}

	// removing the override restores the fallback
	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	err = metadata.SetUnitURI(trx, 7, "")
	if nil != err {
		t.Fatalf("set unit URI error: %s", err)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	uri = metadata.UnitURI(7)
	if "https://other.example.com/7.json" != uri {
		t.Errorf("unit URI: %q", uri)
	}
}

// with no base URI the fallback is just the id and suffix
func TestUnitURIWithoutBase(t *testing.T) {
	setup(t)
	defer teardown(t)

	uri := metadata.UnitURI(0)
	if "0.json" != uri {
		t.Errorf("unit URI: %q", uri)
	}
}

// the provenance hash can be stored exactly once
func TestProvenanceWriteOnce(t *testing.T) {
	setup(t)
	defer teardown(t)

	if "" != metadata.Provenance() {
		t.Errorf("provenance: %q  expected empty", metadata.Provenance())
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	err = metadata.SetProvenance(trx, "")
	if fault.MissingParameters != err {
		t.Fatalf("unexpected set provenance error: %v", err)
	}
	err = metadata.SetProvenance(trx, "0xe3b0c44298fc1c149afbf4c8996fb924")
	if nil != err {
		t.Fatalf("set provenance error: %s", err)
	}

	// a second store inside the same transaction sees the staged value
	err = metadata.SetProvenance(trx, "0xdifferent")
	if fault.AlreadySet != err {
		t.Fatalf("unexpected set provenance error: %v", err)
	}

	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if "0xe3b0c44298fc1c149afbf4c8996fb924" != metadata.Provenance() {
		t.Errorf("provenance: %q", metadata.Provenance())
	}

	// and the committed value blocks any further store
	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trx.Abort()
	err = metadata.SetProvenance(trx, "0xe3b0c44298fc1c149afbf4c8996fb924")
	if fault.AlreadySet != err {
		t.Fatalf("unexpected set provenance error: %v", err)
	}
}
