// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/mode"
	"github.com/bitmark-inc/mintd/rpc/ratelimit"
	"github.com/bitmark-inc/mintd/sale"
)

const (
	rateLimitSale = 200
	rateBurstSale = 100
)

// Sale - type for the RPC
type Sale struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Engine         sale.Engine
}

func New(log *logger.L, engine sale.Engine, isNormalMode func(mode.Mode) bool, isTestingChain func() bool) *Sale {
	return &Sale{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitSale, rateBurstSale),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Engine:         engine,
	}
}

// Sale.PreSaleIssue / Sale.PublicIssue
// ------------------------------------

// IssueArguments - arguments for both issue RPCs
type IssueArguments struct {
	Buyer   *account.Account `json:"buyer"` // base58
	Count   uint64           `json:"count,string"`
	Payment uint64           `json:"payment,string"` // base units
}

// IssueReply - result from both issue RPCs
type IssueReply struct {
	UnitIds []uint64 `json:"unitIds"`
}

// common argument checks for the issue paths
func (s *Sale) gate(buyer *account.Account) error {
	if nil == buyer {
		return fault.MissingParameters
	}

	if !s.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	if buyer.IsTesting() != s.IsTestingChain() {
		return fault.WrongNetworkForPublicKey
	}

	return nil
}

// PreSaleIssue - buy units against a pre-sale allocation
func (s *Sale) PreSaleIssue(arguments *IssueArguments, reply *IssueReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	log := s.Log
	log.Infof("Sale.PreSaleIssue: %+v", arguments)

	if err := s.gate(arguments.Buyer); nil != err {
		return err
	}

	unitIds, err := s.Engine.PreSaleIssue(arguments.Buyer, arguments.Count, arguments.Payment)
	if nil != err {
		return err
	}

	reply.UnitIds = unitIds
	return nil
}

// PublicIssue - buy units in the open sale
func (s *Sale) PublicIssue(arguments *IssueArguments, reply *IssueReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	log := s.Log
	log.Infof("Sale.PublicIssue: %+v", arguments)

	if err := s.gate(arguments.Buyer); nil != err {
		return err
	}

	unitIds, err := s.Engine.PublicIssue(arguments.Buyer, arguments.Count, arguments.Payment)
	if nil != err {
		return err
	}

	reply.UnitIds = unitIds
	return nil
}

// Sale.Info
// ---------

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// Info - phase, price and supply counters in one call
func (s *Sale) Info(_ *InfoArguments, reply *sale.Info) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	*reply = s.Engine.Info()
	return nil
}

// Sale.Allocation
// ---------------

// AllocationArguments - arguments for allocation query RPC
type AllocationArguments struct {
	Participant *account.Account `json:"participant"` // base58
}

// AllocationReply - result from allocation query RPC
type AllocationReply struct {
	Remaining uint64 `json:"remaining,string"`
}

// Allocation - remaining pre-sale quota of a participant
func (s *Sale) Allocation(arguments *AllocationArguments, reply *AllocationReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	log := s.Log
	log.Infof("Sale.Allocation: %+v", arguments)

	if nil == arguments.Participant {
		return fault.MissingParameters
	}

	remaining, err := s.Engine.Allocation(arguments.Participant)
	if nil != err {
		return err
	}

	reply.Remaining = remaining
	return nil
}
