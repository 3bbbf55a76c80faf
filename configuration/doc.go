// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - Lua based configuration for the mint server
//
// the configuration file is a Lua program, so sale parameters can be
// computed, read from files or pulled from the environment before the
// final settings table is returned.
package configuration
