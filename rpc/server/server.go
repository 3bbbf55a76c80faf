// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/counter"
	"github.com/bitmark-inc/mintd/mode"
	"github.com/bitmark-inc/mintd/ownership"
	"github.com/bitmark-inc/mintd/publish"
	"github.com/bitmark-inc/mintd/rpc/admin"
	"github.com/bitmark-inc/mintd/rpc/node"
	salerpc "github.com/bitmark-inc/mintd/rpc/sale"
	"github.com/bitmark-inc/mintd/rpc/unit"
	"github.com/bitmark-inc/mintd/sale"
)

func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()
	engine := sale.Get()

	server := rpc.NewServer()

	_ = server.Register(admin.New(log, engine, mode.Is, mode.IsTesting))
	_ = server.Register(salerpc.New(log, engine, mode.Is, mode.IsTesting))
	_ = server.Register(unit.New(log, engine, ownership.Get()))
	_ = server.Register(node.New(log, engine, start, version, publish.PublicKey(), rpcCount))

	return server
}
