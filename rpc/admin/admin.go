// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/mode"
	"github.com/bitmark-inc/mintd/phase"
	"github.com/bitmark-inc/mintd/rpc/ratelimit"
	"github.com/bitmark-inc/mintd/sale"
)

const (
	rateLimitAdmin = 200
	rateBurstAdmin = 100
)

// limit for batched allocation updates
const maximumParticipants = 100

// Admin - type for the RPC
//
// every call names the administrator account it acts as, the engine
// decides whether that account actually holds the needed authority
type Admin struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Engine         sale.Engine
}

func New(log *logger.L, engine sale.Engine, isNormalMode func(mode.Mode) bool, isTestingChain func() bool) *Admin {
	return &Admin{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Engine:         engine,
	}
}

// common argument checks
func (admin *Admin) gate(caller *account.Account) error {
	if nil == caller {
		return fault.MissingParameters
	}

	if !admin.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	if caller.IsTesting() != admin.IsTestingChain() {
		return fault.WrongNetworkForPublicKey
	}

	return nil
}

// Admin.SetPhase
// --------------

// PhaseArguments - arguments for phase change RPC
type PhaseArguments struct {
	Admin *account.Account `json:"admin"` // base58
	Phase string           `json:"phase"`
}

// PhaseReply - result from phase change RPC
type PhaseReply struct {
	Phase string `json:"phase"`
}

// SetPhase - move the sale to another phase
func (admin *Admin) SetPhase(arguments *PhaseArguments, reply *PhaseReply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	log := admin.Log
	log.Infof("Admin.SetPhase: %+v", arguments)

	if err := admin.gate(arguments.Admin); nil != err {
		return err
	}

	newPhase, err := phase.FromString(arguments.Phase)
	if nil != err {
		return err
	}

	if err := admin.Engine.SetPhase(arguments.Admin, newPhase); nil != err {
		return err
	}

	reply.Phase = newPhase.String()
	return nil
}

// Admin.SetPrice
// --------------

// PriceArguments - arguments for price change RPC
type PriceArguments struct {
	Admin *account.Account `json:"admin"`        // base58
	Price uint64           `json:"price,string"` // base units
}

// PriceReply - result from price change RPC
type PriceReply struct {
	Price uint64 `json:"price,string"`
}

// SetPrice - set the per unit price for later issues
func (admin *Admin) SetPrice(arguments *PriceArguments, reply *PriceReply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	log := admin.Log
	log.Infof("Admin.SetPrice: %+v", arguments)

	if err := admin.gate(arguments.Admin); nil != err {
		return err
	}

	if err := admin.Engine.SetPrice(arguments.Admin, arguments.Price); nil != err {
		return err
	}

	reply.Price = arguments.Price
	return nil
}

// Admin.SetAllocation
// -------------------

// AllocationArguments - arguments for allocation RPC
type AllocationArguments struct {
	Admin        *account.Account   `json:"admin"`        // base58
	Participants []*account.Account `json:"participants"` // base58
	Quota        uint64             `json:"quota,string"`
}

// AllocationReply - result from allocation RPC
type AllocationReply struct {
	Participants int    `json:"participants"`
	Quota        uint64 `json:"quota,string"`
}

// SetAllocation - grant a pre-sale quota to a batch of participants
func (admin *Admin) SetAllocation(arguments *AllocationArguments, reply *AllocationReply) error {

	count := len(arguments.Participants)
	if err := ratelimit.LimitN(admin.Limiter, count, maximumParticipants); nil != err {
		return err
	}

	log := admin.Log
	log.Infof("Admin.SetAllocation: %+v", arguments)

	if err := admin.gate(arguments.Admin); nil != err {
		return err
	}

	if err := admin.Engine.SetAllocation(arguments.Admin, arguments.Participants, arguments.Quota); nil != err {
		return err
	}

	reply.Participants = count
	reply.Quota = arguments.Quota
	return nil
}

// Admin.SetProvenance
// -------------------

// ProvenanceArguments - arguments for provenance RPC
type ProvenanceArguments struct {
	Admin *account.Account `json:"admin"` // base58
	Hash  string           `json:"hash"`  // hex digest of the final asset list
}

// ProvenanceReply - result from provenance RPC
type ProvenanceReply struct {
	Hash string `json:"hash"`
}

// SetProvenance - record the provenance hash, write once
func (admin *Admin) SetProvenance(arguments *ProvenanceArguments, reply *ProvenanceReply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	log := admin.Log
	log.Infof("Admin.SetProvenance: %+v", arguments)

	if err := admin.gate(arguments.Admin); nil != err {
		return err
	}

	if err := admin.Engine.SetProvenance(arguments.Admin, arguments.Hash); nil != err {
		return err
	}

	reply.Hash = arguments.Hash
	return nil
}

// Admin.SetBaseURI
// ----------------

// BaseURIArguments - arguments for base URI RPC
type BaseURIArguments struct {
	Admin *account.Account `json:"admin"` // base58
	URI   string           `json:"uri"`
}

// BaseURIReply - result from base URI RPC
type BaseURIReply struct {
	URI string `json:"uri"`
}

// SetBaseURI - set the metadata prefix for all units
func (admin *Admin) SetBaseURI(arguments *BaseURIArguments, reply *BaseURIReply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	log := admin.Log
	log.Infof("Admin.SetBaseURI: %+v", arguments)

	if err := admin.gate(arguments.Admin); nil != err {
		return err
	}

	if err := admin.Engine.SetBaseURI(arguments.Admin, arguments.URI); nil != err {
		return err
	}

	reply.URI = arguments.URI
	return nil
}

// Admin.SetUnitURI
// ----------------

// UnitURIArguments - arguments for unit URI override RPC
type UnitURIArguments struct {
	Admin  *account.Account `json:"admin"` // base58
	UnitId uint64           `json:"unitId,string"`
	URI    string           `json:"uri"`
}

// UnitURIReply - result from unit URI override RPC
type UnitURIReply struct {
	UnitId uint64 `json:"unitId,string"`
	URI    string `json:"uri"`
}

// SetUnitURI - override the metadata location of one issued unit
func (admin *Admin) SetUnitURI(arguments *UnitURIArguments, reply *UnitURIReply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	log := admin.Log
	log.Infof("Admin.SetUnitURI: %+v", arguments)

	if err := admin.gate(arguments.Admin); nil != err {
		return err
	}

	if err := admin.Engine.SetUnitURI(arguments.Admin, arguments.UnitId, arguments.URI); nil != err {
		return err
	}

	reply.UnitId = arguments.UnitId
	reply.URI = arguments.URI
	return nil
}

// Admin.Reserve
// -------------

// ReserveArguments - arguments for reserve RPC
type ReserveArguments struct {
	Admin     *account.Account `json:"admin"`     // base58
	Recipient *account.Account `json:"recipient"` // base58
	Count     uint64           `json:"count,string"`
}

// ReserveReply - result from reserve RPC
type ReserveReply struct {
	UnitIds []uint64 `json:"unitIds"`
}

// Reserve - issue units from the reserved tranche to a recipient
func (admin *Admin) Reserve(arguments *ReserveArguments, reply *ReserveReply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	log := admin.Log
	log.Infof("Admin.Reserve: %+v", arguments)

	if err := admin.gate(arguments.Admin); nil != err {
		return err
	}

	if nil == arguments.Recipient {
		return fault.InvalidRecipient
	}
	if arguments.Recipient.IsTesting() != admin.IsTestingChain() {
		return fault.WrongNetworkForPublicKey
	}

	unitIds, err := admin.Engine.ReserveForRecipient(arguments.Admin, arguments.Recipient, arguments.Count)
	if nil != err {
		return err
	}

	reply.UnitIds = unitIds
	return nil
}

// Admin.Withdraw
// --------------

// WithdrawArguments - arguments for withdraw RPC
type WithdrawArguments struct {
	Admin     *account.Account `json:"admin"`     // base58
	Recipient *account.Account `json:"recipient"` // base58
	Amount    uint64           `json:"amount,string"`
}

// WithdrawReply - result from withdraw RPC
type WithdrawReply struct {
	Amount uint64 `json:"amount,string"`
}

// Withdraw - move collected payments out of custody
func (admin *Admin) Withdraw(arguments *WithdrawArguments, reply *WithdrawReply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	log := admin.Log
	log.Infof("Admin.Withdraw: %+v", arguments)

	if err := admin.gate(arguments.Admin); nil != err {
		return err
	}

	if nil == arguments.Recipient {
		return fault.InvalidRecipient
	}
	if arguments.Recipient.IsTesting() != admin.IsTestingChain() {
		return fault.WrongNetworkForPublicKey
	}

	if err := admin.Engine.WithdrawFunds(arguments.Admin, arguments.Recipient, arguments.Amount); nil != err {
		return err
	}

	reply.Amount = arguments.Amount
	return nil
}
