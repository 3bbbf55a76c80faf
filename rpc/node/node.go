// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/counter"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/mode"
	"github.com/bitmark-inc/mintd/rpc/ratelimit"
	"github.com/bitmark-inc/mintd/sale"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Engine    sale.Engine
	PublicKey []byte
	counter   *counter.Counter
}

func New(log *logger.L, engine sale.Engine, start time.Time, version string, publicKey []byte, counter *counter.Counter) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Engine:    engine,
		PublicKey: publicKey,
		counter:   counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string    `json:"chain"`
	Mode      string    `json:"mode"`
	Sale      sale.Info `json:"sale"`
	RPCs      uint64    `json:"rpcs"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	PublicKey string    `json:"publicKey"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Engine {
		return fault.DatabaseIsNotSet
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Sale = node.Engine.Info()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.PublicKey = hex.EncodeToString(node.PublicKey)
	return nil
}
