// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/allocation"
	"github.com/bitmark-inc/mintd/authority"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/messagebus"
	"github.com/bitmark-inc/mintd/metadata"
	"github.com/bitmark-inc/mintd/phase"
	"github.com/bitmark-inc/mintd/storage"
	"github.com/bitmark-inc/mintd/supply"
)

// SetPhase - switch the sale to another phase
//
// any phase can follow any other and the change takes effect
// immediately
func (e *engine) SetPhase(caller *account.Account, newPhase phase.Phase) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if !authority.HasCapability(caller, authority.ProjectAdmin) {
		return fault.Unauthorized
	}
	if !newPhase.IsValid() {
		return fault.InvalidPhase
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	err = trx.PutN(globalData.handles.SaleState, phaseKey, uint64(newPhase))
	if nil != err {
		trx.Abort()
		return err
	}
	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.currentPhase = newPhase
	globalData.log.Infof("phase now: %s", newPhase)
	messagebus.Bus.Broadcast.Send("phase", []byte{byte(newPhase)})

	return nil
}

// SetPrice - change the price per unit for later issues
func (e *engine) SetPrice(caller *account.Account, price uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if !authority.HasCapability(caller, authority.ProjectAdmin) {
		return fault.Unauthorized
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	err = trx.PutN(globalData.handles.SaleState, priceKey, price)
	if nil != err {
		trx.Abort()
		return err
	}
	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.currentPrice = price
	globalData.log.Infof("price now: %d", price)
	messagebus.Bus.Broadcast.Send("price", uint64Key(price))

	return nil
}

// SetAllocation - overwrite the pre-sale quota for a list of accounts
//
// every listed account receives the same quota, a zero quota removes
// the entries
func (e *engine) SetAllocation(caller *account.Account, participants []*account.Account, quota uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if !authority.HasCapability(caller, authority.ProjectAdmin) {
		return fault.Unauthorized
	}
	if 0 == len(participants) {
		return fault.MissingParameters
	}
	for _, participant := range participants {
		if nil == participant || participant.IsZero() {
			return fault.InvalidRecipient
		}
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	for _, participant := range participants {
		err = allocation.Set(trx, participant, quota)
		if nil != err {
			trx.Abort()
			return err
		}
	}
	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("allocation: %d units for %d participants", quota, len(participants))
	return nil
}

// SetProvenance - record the provenance hash, write-once
func (e *engine) SetProvenance(caller *account.Account, hash string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if !authority.HasCapability(caller, authority.ProjectAdmin) {
		return fault.Unauthorized
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	err = metadata.SetProvenance(trx, hash)
	if nil != err {
		trx.Abort()
		return err
	}
	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("provenance: %q", hash)
	messagebus.Bus.Broadcast.Send("provenance", []byte(hash))
	return nil
}

// SetBaseURI - change the metadata base URI
func (e *engine) SetBaseURI(caller *account.Account, uri string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if !authority.HasCapability(caller, authority.ProjectAdmin) {
		return fault.Unauthorized
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	err = metadata.SetBaseURI(trx, uri)
	if nil != err {
		trx.Abort()
		return err
	}
	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("base URI: %q", uri)
	messagebus.Bus.Broadcast.Send("baseuri", []byte(uri))
	return nil
}

// SetUnitURI - override the metadata URI of one issued unit
//
// an empty URI removes the override so the unit reverts to the base
// URI fallback
func (e *engine) SetUnitURI(caller *account.Account, unitId uint64, uri string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if !authority.HasCapability(caller, authority.ProjectAdmin) {
		return fault.Unauthorized
	}
	if unitId >= supply.Issued() {
		return fault.UnitNotFound
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	err = metadata.SetUnitURI(trx, unitId, uri)
	if nil != err {
		trx.Abort()
		return err
	}
	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("unit %d URI: %q", unitId, uri)
	return nil
}
