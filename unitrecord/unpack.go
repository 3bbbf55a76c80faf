// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unitrecord

import (
	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/util"
)

// Unpack - turn a byte slice into a record
//
// the out of range panic from a short buffer is captured and turned
// into an invalid record error
//
// must cast result to correct type
//
// e.g.
//
//	issue, ok := result.(*unitrecord.UnitIssue)
func (record Packed) Unpack(testnet bool) (t Record, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			// recover from any of the casts etc.
			t = nil
			n = 0
			e = fault.NotUnitRecord
		}
	}()

	recordType, n := util.FromVarint64(record)

	switch TagType(recordType) {

	case UnitIssueTag:

		// unit identifier
		id, idLength := util.FromVarint64(record[n:])
		if 0 == idLength {
			return nil, 0, fault.NotUnitRecord
		}
		n += idLength

		// owner account
		ownerLength, ownerOffset := util.ClippedVarint64(record[n:], 1, maxAccountLength)
		if 0 == ownerLength {
			return nil, 0, fault.NotUnitRecord
		}
		n += ownerOffset
		owner, err := account.AccountFromBytes(record[n : n+ownerLength])
		if nil != err {
			return nil, 0, err
		}
		if owner.IsTesting() != testnet {
			return nil, 0, fault.WrongNetworkForPublicKey
		}
		n += ownerLength

		// origin of the issue
		origin, originLength := util.FromVarint64(record[n:])
		if 0 == originLength {
			return nil, 0, fault.NotUnitRecord
		}
		if !Origin(origin).IsValid() {
			return nil, 0, fault.InvalidOrigin
		}
		n += originLength

		// price paid for the unit
		price, priceLength := util.FromVarint64(record[n:])
		if 0 == priceLength {
			return nil, 0, fault.NotUnitRecord
		}
		n += priceLength

		// issue timestamp
		timestamp, timestampLength := util.FromVarint64(record[n:])
		if 0 == timestampLength {
			return nil, 0, fault.NotUnitRecord
		}
		n += timestampLength

		r := &UnitIssue{
			Id:        id,
			Owner:     owner,
			Origin:    Origin(origin),
			Price:     price,
			Timestamp: timestamp,
		}
		return r, n, nil

	default:
	}
	return nil, 0, fault.NotUnitRecord
}
