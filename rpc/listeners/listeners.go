// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

// Listener - a started listener
//
// Serve spawns the accept loops and returns, errors after that are
// only logged
type Listener interface {
	Serve() error
}
