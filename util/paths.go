// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a path from the configuration file
//
// relative paths in the Lua configuration are taken as relative to
// the data directory, absolute paths pass through unchanged
func EnsureAbsolute(dataDirectory string, path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(dataDirectory, path)
	}
	return filepath.Clean(path)
}

// EnsureFileExists - true if the named file is already present
//
// used to decide whether the TLS certificate pair needs generating
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
