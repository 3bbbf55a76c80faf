// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/account"
)

// Record - type to represent an ownership record
type Record struct {
	N      uint64 `json:"n,string"`
	UnitId uint64 `json:"unitId,string"`
}

// fetch a list of units for an owner
func listUnitsFor(owner *account.Account, start uint64, count int) ([]Record, error) {

	startBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(startBytes, start)

	ownerBytes := owner.Bytes()
	prefix := append(ownerBytes, startBytes...)

	cursor := data.PoolOwnerList.NewFetchCursor().Seek(prefix)

	// owner ⧺ count → unit id
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(items))

loop:
	for _, item := range items {
		n := len(item.Key)
		split := n - uint64ByteSize
		if split <= 0 {
			logger.Panicf("split cannot be <= 0: %d", split)
		}
		itemOwner := item.Key[:split]
		if !bytes.Equal(ownerBytes, itemOwner) {
			break loop
		}

		if uint64ByteSize != len(item.Value) {
			logger.Panicf("OwnerList database corrupt: key: %x  value: %x", item.Key, item.Value)
		}

		records = append(records, Record{
			N:      binary.BigEndian.Uint64(item.Key[split:]),
			UnitId: binary.BigEndian.Uint64(item.Value),
		})
	}

	return records, nil
}
