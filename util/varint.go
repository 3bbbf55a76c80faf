// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - longest possible Varint64 encoding
const Varint64MaximumBytes = 9

// ToVarint64 - encode a 64 bit unsigned integer as Varint64
//
// unit records pack every numeric field this way so small ids and
// prices stay compact on the wire
//
// layout, 7 data bits per byte with a continuation flag, except the
// ninth byte which carries a full 8 bits:
//
//	byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
//	byte 2:  ext | B13 | B12 | B11 | B10 | B09 | B08 | B07
//	...
//	byte 8:  ext | B55 | B54 | B53 | B52 | B51 | B50 | B49
//	byte 9:  B63 | B62 | B61 | B60 | B59 | B58 | B57 | B56
func ToVarint64(value uint64) []byte {
	encoded := make([]byte, 0, Varint64MaximumBytes)
	if value < 0x80 {
		return append(encoded, byte(value))
	}

	for i := 0; i < Varint64MaximumBytes && 0 != value; i += 1 {
		ext := uint64(0x80)
		if value < 0x80 {
			ext = 0x00
		}
		encoded = append(encoded, byte(value|ext))
		value >>= 7
	}
	return encoded
}

// FromVarint64 - decode a Varint64 from the start of a buffer
//
// the second value is the number of bytes consumed
// a truncated buffer yields 0, 0
func FromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)

	shift := uint(0)
	count := 0

	for count < len(buffer) {
		currentByte := uint64(buffer[count])
		count += 1
		if count < Varint64MaximumBytes {
			value |= currentByte & 0x7f << shift
			if 0 == currentByte&0x80 {
				return value, count
			}
		} else {
			value |= currentByte << shift
			return value, count
		}
		shift += 7
	}
	return 0, 0
}

// ClippedVarint64 - decode a Varint64 restricted to minimum..maximum
//
// the unpacker uses this for length prefixes, e.g. an owner field
// whose length falls outside the valid account sizes is rejected as
// 0, 0 rather than decoded
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < 0 || minimum >= maximum {
		return 0, 0
	}

	value, count := FromVarint64(buffer)
	if 0 == count {
		return 0, 0
	}
	clipped := int(value)
	if clipped < minimum || clipped > maximum {
		return 0, 0
	}
	return clipped, count
}
