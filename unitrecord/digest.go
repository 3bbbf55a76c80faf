// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unitrecord

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/mintd/fault"
)

// DigestLength - number of bytes in a record digest
const DigestLength = 32

// Digest - the SHA3-256 identifier of a packed record
//
// broadcast alongside each minted record so subscribers can refer to
// a unit issue without re-hashing the record themselves
type Digest [DigestLength]byte

// MakeDigest - create the digest of a packed record
func (record Packed) MakeDigest() Digest {
	return Digest(sha3.Sum256(record))
}

// Bytes - convert a digest to a byte slice
func (digest Digest) Bytes() []byte {
	return digest[:]
}

// String - convert a digest to hex for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - convert a digest to hex for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<digest:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert a digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(DigestLength)
	buffer := make([]byte, size)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if DigestLength != hex.DecodedLen(len(s)) {
		return fault.NotDigest
	}
	byteCount, err := hex.Decode(digest[:], s)
	if nil != err {
		return err
	}
	if DigestLength != byteCount {
		return fault.NotDigest
	}
	return nil
}

// DigestFromBytes - convert and validate a binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.NotDigest
	}
	copy(digest[:], buffer)
	return nil
}
