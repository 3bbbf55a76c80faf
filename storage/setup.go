// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/mintd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Units          *PoolHandle `prefix:"U" database:"ledger"`
	UnitURIs       *PoolHandle `prefix:"M" database:"ledger"`
	Allocations    *PoolHandle `prefix:"Q" database:"ledger"`
	SaleState      *PoolHandle `prefix:"S" database:"ledger"`
	OwnerNextCount *PoolHandle `prefix:"N" database:"index"`
	OwnerList      *PoolHandle `prefix:"L" database:"index"`
	OwnerUnitIndex *PoolHandle `prefix:"D" database:"index"`
	UnitOwners     *PoolHandle `prefix:"O" database:"index"`
	TestData       *PoolHandle `prefix:"Z" database:"index"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentLedgerDBVersion = 0x100
	currentIndexDBVersion  = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	dbLedger  *leveldb.DB
	dbIndex   *leveldb.DB
	trx       Transaction
	ledgerTrx *leveldb.Batch
	indexTrx  *leveldb.Batch
	cache     Cache
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
//
// the returned flag is true when the ownership index was dropped and
// must be rebuilt from the unit ledger
func Initialise(database string, readOnly bool) (bool, error) {
	poolData.Lock()
	defer poolData.Unlock()

	ok := false
	mustReindex := false

	if nil != poolData.dbLedger {
		return mustReindex, fault.AlreadyInitialised
	}

	defer func() {
		if !ok {
			dbClose()
		}
	}()

	ledgerDatabase := database + "-ledger.leveldb"
	indexDatabase := database + "-index.leveldb"

	db, ledgerVersion, err := getDB(ledgerDatabase, readOnly)
	if nil != err {
		return mustReindex, err
	}
	poolData.dbLedger = db

	// ensure no database downgrade
	if ledgerVersion > currentLedgerDBVersion {
		logger.Criticalf("ledger database version: %d > current version: %d", ledgerVersion, currentLedgerDBVersion)
		return mustReindex, fmt.Errorf("ledger database version: %d > current version: %d", ledgerVersion, currentLedgerDBVersion)
	}

	db, indexVersion, err := getDB(indexDatabase, readOnly)
	if nil != err {
		return mustReindex, err
	}
	poolData.dbIndex = db

	// ensure no database downgrade
	if indexVersion > currentIndexDBVersion {
		logger.Criticalf("index database version: %d > current version: %d", indexVersion, currentIndexDBVersion)
		return mustReindex, fmt.Errorf("index database version: %d > current version: %d", indexVersion, currentIndexDBVersion)
	}

	// prevent readOnly from modifying the database
	if readOnly && (ledgerVersion != currentLedgerDBVersion || indexVersion != currentIndexDBVersion) {
		logger.Criticalf("database is inconsistent: ledger: %d  index: %d  current: %d & %d", ledgerVersion, indexVersion, currentLedgerDBVersion, currentIndexDBVersion)
		return mustReindex, fmt.Errorf("database is inconsistent: ledger: %d  index: %d  current: %d & %d", ledgerVersion, indexVersion, currentLedgerDBVersion, currentIndexDBVersion)
	}

	if 0 < ledgerVersion && ledgerVersion < currentLedgerDBVersion {

		// no migration path yet, so any lower version is a hard stop
		logger.Criticalf("ledger database version: %d < current version: %d", ledgerVersion, currentLedgerDBVersion)
		return mustReindex, fmt.Errorf("ledger database version: %d < current version: %d", ledgerVersion, currentLedgerDBVersion)

	} else if 0 == ledgerVersion {

		// database was empty so tag as current version
		err = putVersion(poolData.dbLedger, currentLedgerDBVersion)
		if err != nil {
			return mustReindex, err
		}
	}

	// see if index need to be created or deleted and re-created
	if indexVersion < currentIndexDBVersion {

		mustReindex = true

		// close out current index
		poolData.dbIndex.Close()
		poolData.dbIndex = nil

		logger.Criticalf("drop index database: %s", indexDatabase)

		// erase the index completely
		err = os.RemoveAll(indexDatabase)
		if nil != err {
			return mustReindex, err
		}

		// generate an empty index database
		// the current version is only stamped by ReindexDone
		poolData.dbIndex, _, err = getDB(indexDatabase, readOnly)
		if nil != err {
			return mustReindex, err
		}

	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// databases
	poolData.ledgerTrx = new(leveldb.Batch)
	poolData.indexTrx = new(leveldb.Batch)
	poolData.cache = newCache()
	ledgerDBAccess := newDA(poolData.dbLedger, poolData.ledgerTrx, poolData.cache)
	indexDBAccess := newDA(poolData.dbIndex, poolData.indexTrx, poolData.cache)
	access := []DataAccess{ledgerDBAccess, indexDBAccess}
	poolData.trx = newTransaction(access)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return mustReindex, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		var dataAccess DataAccess
		switch dbName := fieldInfo.Tag.Get("database"); dbName {
		case "ledger":
			dataAccess = ledgerDBAccess
		case "index":
			dataAccess = indexDBAccess
		default:
			return mustReindex, fmt.Errorf("pool: %v  has invalid database: %q", fieldInfo, dbName)
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: dataAccess,
		}

		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	ok = true // prevent db close
	return mustReindex, nil
}

func dbClose() {
	if nil != poolData.dbIndex {
		poolData.dbIndex.Close()
		poolData.dbIndex = nil
	}
	if nil != poolData.dbLedger {
		poolData.dbLedger.Close()
		poolData.dbLedger = nil
	}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// ReindexDone - called after the ownership index rebuild
func ReindexDone() error {
	poolData.Lock()
	defer poolData.Unlock()
	return putVersion(poolData.dbIndex, currentIndexDBVersion)
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// NewDBTransaction - obtain the global transaction
//
// only one transaction can be open at a time, a second caller gets an
// error until the first commits or aborts
func NewDBTransaction() (Transaction, error) {
	err := poolData.trx.Begin()
	if nil != err {
		return nil, err
	}
	return poolData.trx, nil
}
