// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unit

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/ownership"
	"github.com/bitmark-inc/mintd/rpc/ratelimit"
	"github.com/bitmark-inc/mintd/sale"
	"github.com/bitmark-inc/mintd/unitrecord"
)

// Unit - type for the RPC
//
// read only queries, they work in any mode
type Unit struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Engine    sale.Engine
	Ownership ownership.Ownership
}

const (
	MaximumOwnedCount = 100
	rateLimitUnit     = 200
	rateBurstUnit     = 100
)

func New(log *logger.L, engine sale.Engine, os ownership.Ownership) *Unit {
	return &Unit{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitUnit, rateBurstUnit),
		Engine:    engine,
		Ownership: os,
	}
}

// Unit.URI
// --------

// URIArguments - arguments for metadata location RPC
type URIArguments struct {
	UnitId uint64 `json:"unitId,string"`
}

// URIReply - result from metadata location RPC
type URIReply struct {
	UnitId uint64 `json:"unitId,string"`
	URI    string `json:"uri"`
}

// URI - metadata location of an issued unit
func (unit *Unit) URI(arguments *URIArguments, reply *URIReply) error {

	if err := ratelimit.Limit(unit.Limiter); nil != err {
		return err
	}

	log := unit.Log
	log.Infof("Unit.URI: %+v", arguments)

	uri, err := unit.Engine.UnitURI(arguments.UnitId)
	if nil != err {
		return err
	}

	reply.UnitId = arguments.UnitId
	reply.URI = uri
	return nil
}

// Unit.Record
// -----------

// RecordArguments - arguments for record RPC
type RecordArguments struct {
	UnitId uint64 `json:"unitId,string"`
}

// RecordReply - result from record RPC
type RecordReply struct {
	Unit *unitrecord.UnitIssue `json:"unit"`
}

// Record - the stored issue record of one unit
func (unit *Unit) Record(arguments *RecordArguments, reply *RecordReply) error {

	if err := ratelimit.Limit(unit.Limiter); nil != err {
		return err
	}

	log := unit.Log
	log.Infof("Unit.Record: %+v", arguments)

	record, err := unit.Engine.Unit(arguments.UnitId)
	if nil != err {
		return err
	}

	reply.Unit = record
	return nil
}

// Unit.Owned
// ----------

// OwnedArguments - arguments for RPC
type OwnedArguments struct {
	Owner *account.Account `json:"owner"`        // base58
	Start uint64           `json:"start,string"` // first record number
	Count int              `json:"count"`        // number of records
}

// OwnedReply - result of owned RPC
type OwnedReply struct {
	Next  uint64             `json:"next,string"` // start value for the next call
	Units []ownership.Record `json:"units"`       // list of owned units
}

// Owned - list units belonging to an account
func (unit *Unit) Owned(arguments *OwnedArguments, reply *OwnedReply) error {

	if err := ratelimit.LimitN(unit.Limiter, arguments.Count, MaximumOwnedCount); nil != err {
		return err
	}

	log := unit.Log
	log.Infof("Unit.Owned: %+v", arguments)

	if nil == arguments.Owner {
		return fault.MissingParameters
	}

	records, err := unit.Ownership.ListUnitsFor(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	log.Debugf("ownership: %+v", records)

	current := uint64(0)
	for _, r := range records {
		current = r.N
	}

	reply.Units = records

	// if no record was found then just return next as zero
	// otherwise the next possible number
	if 0 == current {
		reply.Next = 0
	} else {
		reply.Next = current + 1
	}
	return nil
}
