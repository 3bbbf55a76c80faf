// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/storage"
)

// to ensure synchronised ownership updates
var toLock sync.Mutex

const (
	uint64ByteSize = 8
)

// from storage/doc.go:
//
// Ownership:
//   OwnerNextCount  owner   - next count value to use for appending to owned units
//   OwnerList       count   - append list of owned units
//   OwnerUnitIndex  unit id - position in list of owned units, for delete after transfer
//   UnitOwners      unit id - current owner of the unit

// Append - add a newly issued unit to the owner's holdings
//
// the record for the unit must be staged on the same transaction
func Append(trx storage.Transaction, owner *account.Account, unitId uint64) error {
	// ensure single threaded
	toLock.Lock()
	defer toLock.Unlock()

	return create(trx, owner, unitId)
}

// Transfer - move a unit from its current owner to a new owner
//
// the caller is responsible for checking that the accounts are valid
// and that the transfer is authorised
func Transfer(trx storage.Transaction, unitId uint64, currentOwner *account.Account, newOwner *account.Account) error {
	// ensure single threaded
	toLock.Lock()
	defer toLock.Unlock()

	unitKey := unitIdKey(unitId)

	// get count for the current owner record
	dKey := append(currentOwner.Bytes(), unitKey...)
	dCount, err := trx.Get(data.PoolOwnerUnitIndex, dKey)
	if nil != err {
		return err
	}
	if nil == dCount {
		return fault.NotUnitOwner
	}

	// delete the current owner's records
	oKey := append(currentOwner.Bytes(), dCount...)
	err = trx.Delete(data.PoolOwnerList, oKey)
	if nil != err {
		return err
	}
	err = trx.Delete(data.PoolOwnerUnitIndex, dKey)
	if nil != err {
		return err
	}

	// create overwrites the unit owner record
	return create(trx, newOwner, unitId)
}

// internal creation routine, must be called with lock held
// adds the unit to the owner's list and records the owner of the unit
func create(trx storage.Transaction, owner *account.Account, unitId uint64) error {

	// increment the count for owner
	nKey := owner.Bytes()
	count, err := trx.Get(data.PoolOwnerNextCount, nKey)
	if nil != err {
		return err
	}
	if nil == count {
		count = []byte{0, 0, 0, 0, 0, 0, 0, 0}
	} else if uint64ByteSize != len(count) {
		logger.Panic("OwnerNextCount database corrupt")
	}
	newCount := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(newCount, binary.BigEndian.Uint64(count)+1)
	err = trx.Put(data.PoolOwnerNextCount, nKey, newCount)
	if nil != err {
		return err
	}

	unitKey := unitIdKey(unitId)

	// write to the owner list
	oKey := append(owner.Bytes(), count...)
	err = trx.Put(data.PoolOwnerList, oKey, unitKey)
	if nil != err {
		return err
	}

	// write new index record
	dKey := append(owner.Bytes(), unitKey...)
	err = trx.Put(data.PoolOwnerUnitIndex, dKey, count)
	if nil != err {
		return err
	}

	// record the owner of the unit
	return trx.Put(data.PoolUnitOwners, unitKey, owner.Bytes())
}

// OwnerOf - find the current owner of a unit
func OwnerOf(trx storage.Transaction, unitId uint64) (*account.Account, error) {
	key := unitIdKey(unitId)

	var packed []byte
	if nil == trx {
		packed = data.PoolUnitOwners.Get(key)
	} else {
		var err error
		packed, err = trx.Get(data.PoolUnitOwners, key)
		if nil != err {
			return nil, err
		}
	}

	if nil == packed {
		return nil, fault.UnitNotFound
	}

	owner, err := account.AccountFromBytes(packed)
	if nil != err {
		logger.Criticalf("ownership.OwnerOf: invalid owner for unit: %d  error: %s", unitId, err)
		logger.Panic("ownership.OwnerOf: UnitOwners database corrupt")
	}
	return owner, nil
}

// CurrentlyOwns - check owner currently owns this unit
func CurrentlyOwns(trx storage.Transaction, owner *account.Account, unitId uint64) bool {
	dKey := append(owner.Bytes(), unitIdKey(unitId)...)

	if nil == trx {
		return data.PoolOwnerUnitIndex.Has(dKey)
	}
	has, err := trx.Has(data.PoolOwnerUnitIndex, dKey)
	if nil != err {
		return false
	}
	return has
}

// convert a unit id to its 8 byte big endian database key
func unitIdKey(unitId uint64) []byte {
	key := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(key, unitId)
	return key
}
