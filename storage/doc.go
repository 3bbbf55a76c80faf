// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is added to the key
// before accessing the database.  The value is some binary data, the
// structure of which is known to the storage client.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in the db)
// 2. ++ indicates concatenation of byte data
// 3. count is a 8 byte big endian unsigned integer
//
// Units:
//
//   U ++ unit id               - issued unit
//                                data: packed unit record
//   M ++ unit id               - explicit unit metadata URI
//                                data: UTF-8 URI bytes
//                                (only present when the unit URI was overridden)
//
// Sale:
//
//   Q ++ owner                 - remaining pre-sale allocation for an account
//                                data: count
//   S ++ name                  - named sale state item
//                                data: depends on the name:
//                                      "phase"      count (enumeration value)
//                                      "price"      count (base units per issue)
//                                      "issued"     count
//                                      "reserved"   count
//                                      "custody"    count (balance of held payments)
//                                      "baseuri"    UTF-8 URI bytes
//                                      "provenance" 32 byte digest
//
// Ownership:
//
//   N ++ owner                 - next count value to use for appending to owned items
//                                data: count
//   L ++ owner ++ count        - list of owned items
//                                data: unit id
//   D ++ owner ++ unit id      - position in list of owned items, for delete after transfer
//                                data: count
//   O ++ unit id               - current owner of the unit
//                                data: owner
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
