// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unitrecord

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/util"
)

// TagType - enumerate the possible record types
type TagType uint64

// record types
const (
	NullTag      = TagType(iota)
	UnitIssueTag = TagType(iota)
	InvalidTag   = TagType(iota) // this and above are invalid
)

// Origin - how a unit entered circulation
type Origin uint64

// origin of an issued unit
const (
	ReservedOrigin   = Origin(iota)
	PreSaleOrigin    = Origin(iota)
	PublicSaleOrigin = Origin(iota)
	originCount      = Origin(iota) // count of valid origin values
)

// Packed - the on-ledger byte form of a record
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
}

// UnitIssue - the ledger entry for a single issued unit
type UnitIssue struct {
	Id        uint64           `json:"id,string"`
	Owner     *account.Account `json:"owner"`
	Origin    Origin           `json:"origin"`
	Price     uint64           `json:"price,string"`
	Timestamp uint64           `json:"timestamp,string"`
}

// IsValid - check an origin value is one of the defined constants
func (origin Origin) IsValid() bool {
	return origin < originCount
}

// String - convert origin to its text form
func (origin Origin) String() string {
	switch origin {
	case ReservedOrigin:
		return "reserved"
	case PreSaleOrigin:
		return "presale"
	case PublicSaleOrigin:
		return "public"
	default:
		return fmt.Sprintf("*unknown origin: %d*", uint64(origin))
	}
}

// MarshalText - convert origin to text for JSON
func (origin Origin) MarshalText() ([]byte, error) {
	if !origin.IsValid() {
		return nil, fault.InvalidOrigin
	}
	return []byte(origin.String()), nil
}

// UnmarshalText - convert text from JSON to origin
func (origin *Origin) UnmarshalText(s []byte) error {
	switch string(s) {
	case "reserved":
		*origin = ReservedOrigin
	case "presale", "pre-sale":
		*origin = PreSaleOrigin
	case "public":
		*origin = PublicSaleOrigin
	default:
		return fault.InvalidOrigin
	}
	return nil
}

// RecordName - returns the name of a record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *UnitIssue, UnitIssue:
		return "UnitIssue", true
	default:
		return "", false
	}
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, _ := util.FromVarint64(record)
	return TagType(recordType)
}

// MarshalText - convert a packed record to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	buffer := make([]byte, size)
	hex.Encode(buffer, record)
	return buffer, nil
}

// UnmarshalText - convert a hex packed record from JSON
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	buffer := make([]byte, size)
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*record = buffer[:byteCount]
	return nil
}
