// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package unitrecord - the packed ledger representation of an issued
// unit
//
// Each issued unit is stored as a length-checked byte sequence
// containing:
//
//	a. the record tag
//	b. the unit identifier
//	c. the owner account
//	d. the origin of the issue (reserved, pre-sale or public)
//	e. the unit price paid at issue time
//	f. the issue timestamp
//
// All numeric values are packed as Base-128 varints, all
// variable-length fields are preceded by a varint byte count.  The
// packed form is the canonical representation: it is the value stored
// in the ledger database and the value broadcast to subscribers.
package unitrecord
