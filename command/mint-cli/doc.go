// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line client for the mintd sale node
//
// stores identities in a JSON configuration file under
// XDG_CONFIG_HOME, seeds are encrypted with argon2 hashed
// passwords, and talks JSON-RPC over TLS to a mintd
//
// e.g. to buy two units in the public sale:
//
//   mint-cli -n testing -i buyer buy -q 2 -a 5000000
package main
