// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// FromBase58 - convert from base58 string to slice of bytes
//
// returns an empty slice if the string is not valid base58
func FromBase58(s string) []byte {
	b, err := base58.FastBase58Decoding(s)
	if nil != err {
		return []byte{}
	}
	return b
}

// ToBase58 - convert a slice of bytes to a base58 string
func ToBase58(b []byte) string {
	return base58.FastBase58Encoding(b)
}
