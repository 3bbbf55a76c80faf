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

// maximum packed size of an owner account
const maxAccountLength = 64

// Pack - pack a unit issue to its canonical byte form
//
// the packed record is the value stored under the unit identifier in
// the ledger and the value broadcast on the "minted" channel
func (issue *UnitIssue) Pack() (Packed, error) {
	if nil == issue.Owner || issue.Owner.IsZero() {
		return nil, fault.InvalidRecipient
	}
	if !issue.Origin.IsValid() {
		return nil, fault.InvalidOrigin
	}

	packed := util.ToVarint64(uint64(UnitIssueTag))
	packed = appendUint64(packed, issue.Id)
	packed = appendAccount(packed, issue.Owner)
	packed = appendUint64(packed, uint64(issue.Origin))
	packed = appendUint64(packed, issue.Price)
	packed = appendUint64(packed, issue.Timestamp)

	return packed, nil
}

// append a varint64 to a buffer
func appendUint64(buffer []byte, value uint64) []byte {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}

// append a length prefixed account to a buffer
func appendAccount(buffer []byte, account *account.Account) []byte {
	data := account.Bytes()
	buffer = appendBytes(buffer, data)
	return buffer
}

// append a length prefixed byte block to a buffer
func appendBytes(buffer []byte, data []byte) []byte {
	length := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, length...)
	buffer = append(buffer, data...)
	return buffer
}
