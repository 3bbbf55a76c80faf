// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/storage"
)

// Ownership - interface for ownership enquiries
type Ownership interface {
	ListUnitsFor(*account.Account, uint64, int) ([]Record, error)
}

type ownership struct {
	PoolOwnerNextCount storage.Handle
	PoolOwnerList      storage.Handle
	PoolOwnerUnitIndex storage.Handle
	PoolUnitOwners     storage.Handle
}

func (o ownership) ListUnitsFor(owner *account.Account, start uint64, count int) ([]Record, error) {
	return listUnitsFor(owner, start, count)
}

var data ownership

// Initialise - initialise ownership
func Initialise(ownerNextCount, ownerList, ownerUnitIndex, unitOwners storage.Handle) {
	data = ownership{
		PoolOwnerNextCount: ownerNextCount,
		PoolOwnerList:      ownerList,
		PoolOwnerUnitIndex: ownerUnitIndex,
		PoolUnitOwners:     unitOwners,
	}
}

// Get - return Record interface
func Get() Ownership {
	return &data
}
