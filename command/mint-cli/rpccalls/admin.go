// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/rpc/admin"
)

// PhaseData - data for a phase change request
type PhaseData struct {
	Admin *account.Account
	Phase string
}

// SetPhase - move the sale to another phase
func (client *Client) SetPhase(phaseConfig *PhaseData) (*admin.PhaseReply, error) {

	phaseArgs := admin.PhaseArguments{
		Admin: phaseConfig.Admin,
		Phase: phaseConfig.Phase,
	}

	client.printJson("Phase Request", phaseArgs)

	reply := &admin.PhaseReply{}
	err := client.client.Call("Admin.SetPhase", phaseArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Phase Reply", reply)

	return reply, nil
}

// PriceData - data for a price change request
type PriceData struct {
	Admin *account.Account
	Price uint64
}

// SetPrice - set the per unit price for later issues
func (client *Client) SetPrice(priceConfig *PriceData) (*admin.PriceReply, error) {

	priceArgs := admin.PriceArguments{
		Admin: priceConfig.Admin,
		Price: priceConfig.Price,
	}

	client.printJson("Price Request", priceArgs)

	reply := &admin.PriceReply{}
	err := client.client.Call("Admin.SetPrice", priceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Price Reply", reply)

	return reply, nil
}

// AllocationData - data for a pre-sale allocation request
type AllocationData struct {
	Admin        *account.Account
	Participants []*account.Account
	Quota        uint64
}

// SetAllocation - grant a pre-sale quota to a batch of participants
func (client *Client) SetAllocation(allocationConfig *AllocationData) (*admin.AllocationReply, error) {

	allocationArgs := admin.AllocationArguments{
		Admin:        allocationConfig.Admin,
		Participants: allocationConfig.Participants,
		Quota:        allocationConfig.Quota,
	}

	client.printJson("Allocation Request", allocationArgs)

	reply := &admin.AllocationReply{}
	err := client.client.Call("Admin.SetAllocation", allocationArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Allocation Reply", reply)

	return reply, nil
}

// ProvenanceData - data for a provenance hash request
type ProvenanceData struct {
	Admin *account.Account
	Hash  string
}

// SetProvenance - record the provenance hash, write once
func (client *Client) SetProvenance(provenanceConfig *ProvenanceData) (*admin.ProvenanceReply, error) {

	provenanceArgs := admin.ProvenanceArguments{
		Admin: provenanceConfig.Admin,
		Hash:  provenanceConfig.Hash,
	}

	client.printJson("Provenance Request", provenanceArgs)

	reply := &admin.ProvenanceReply{}
	err := client.client.Call("Admin.SetProvenance", provenanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Provenance Reply", reply)

	return reply, nil
}

// BaseURIData - data for a base URI request
type BaseURIData struct {
	Admin *account.Account
	URI   string
}

// SetBaseURI - set the metadata prefix for all units
func (client *Client) SetBaseURI(baseURIConfig *BaseURIData) (*admin.BaseURIReply, error) {

	baseURIArgs := admin.BaseURIArguments{
		Admin: baseURIConfig.Admin,
		URI:   baseURIConfig.URI,
	}

	client.printJson("BaseURI Request", baseURIArgs)

	reply := &admin.BaseURIReply{}
	err := client.client.Call("Admin.SetBaseURI", baseURIArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("BaseURI Reply", reply)

	return reply, nil
}

// UnitURIData - data for a unit URI override request
type UnitURIData struct {
	Admin  *account.Account
	UnitId uint64
	URI    string
}

// SetUnitURI - override the metadata location of one issued unit
func (client *Client) SetUnitURI(unitURIConfig *UnitURIData) (*admin.UnitURIReply, error) {

	unitURIArgs := admin.UnitURIArguments{
		Admin:  unitURIConfig.Admin,
		UnitId: unitURIConfig.UnitId,
		URI:    unitURIConfig.URI,
	}

	client.printJson("UnitURI Request", unitURIArgs)

	reply := &admin.UnitURIReply{}
	err := client.client.Call("Admin.SetUnitURI", unitURIArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("UnitURI Reply", reply)

	return reply, nil
}

// ReserveData - data for a reserved tranche issue request
type ReserveData struct {
	Admin     *account.Account
	Recipient *account.Account
	Count     uint64
}

// Reserve - issue units from the reserved tranche to a recipient
func (client *Client) Reserve(reserveConfig *ReserveData) (*admin.ReserveReply, error) {

	reserveArgs := admin.ReserveArguments{
		Admin:     reserveConfig.Admin,
		Recipient: reserveConfig.Recipient,
		Count:     reserveConfig.Count,
	}

	client.printJson("Reserve Request", reserveArgs)

	reply := &admin.ReserveReply{}
	err := client.client.Call("Admin.Reserve", reserveArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Reserve Reply", reply)

	return reply, nil
}

// WithdrawData - data for a withdraw request
type WithdrawData struct {
	Admin     *account.Account
	Recipient *account.Account
	Amount    uint64
}

// Withdraw - move collected payments out of custody
func (client *Client) Withdraw(withdrawConfig *WithdrawData) (*admin.WithdrawReply, error) {

	withdrawArgs := admin.WithdrawArguments{
		Admin:     withdrawConfig.Admin,
		Recipient: withdrawConfig.Recipient,
		Amount:    withdrawConfig.Amount,
	}

	client.printJson("Withdraw Request", withdrawArgs)

	reply := &admin.WithdrawReply{}
	err := client.client.Call("Admin.Withdraw", withdrawArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Withdraw Reply", reply)

	return reply, nil
}
