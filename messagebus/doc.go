// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queuing system for all message packets
// generated by the issuance engine and consumed by the
// publishing and test subsystems
package messagebus
