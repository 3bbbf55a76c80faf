// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/allocation"
	"github.com/bitmark-inc/mintd/custody"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/metadata"
	"github.com/bitmark-inc/mintd/mode"
	"github.com/bitmark-inc/mintd/ownership"
	"github.com/bitmark-inc/mintd/phase"
	"github.com/bitmark-inc/mintd/supply"
	"github.com/bitmark-inc/mintd/unitrecord"
)

// Info - a point-in-time snapshot of the sale state
type Info struct {
	Phase          string `json:"phase"`
	Price          uint64 `json:"price"`
	Issued         uint64 `json:"issued"`
	Cap            uint64 `json:"cap"`
	Reserved       uint64 `json:"reserved"`
	ReservationCap uint64 `json:"reservationCap"`
	Custody        uint64 `json:"custody"`
}

// CurrentPhase - the active sale phase
func (e *engine) CurrentPhase() phase.Phase {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.currentPhase
}

// CurrentPrice - the price per unit for paid issues
func (e *engine) CurrentPrice() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.currentPrice
}

// Info - snapshot of counters, phase and price
func (e *engine) Info() Info {
	globalData.RLock()
	defer globalData.RUnlock()

	return Info{
		Phase:          globalData.currentPhase.String(),
		Price:          globalData.currentPrice,
		Issued:         supply.Issued(),
		Cap:            supply.Cap(),
		Reserved:       supply.Reserved(),
		ReservationCap: supply.ReservationCap(),
		Custody:        custody.Balance(),
	}
}

// UnitURI - the metadata URI of an issued unit
//
// an explicit override wins, otherwise the base URI with the decimal
// unit id and a ".json" suffix
func (e *engine) UnitURI(unitId uint64) (string, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if unitId >= supply.Issued() {
		return "", fault.UnitNotFound
	}
	return metadata.UnitURI(unitId), nil
}

// ProvenanceHash - the recorded provenance hash, empty until set
func (e *engine) ProvenanceHash() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return metadata.Provenance()
}

// Allocation - remaining pre-sale quota for a participant
func (e *engine) Allocation(participant *account.Account) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if nil == participant || participant.IsZero() {
		return 0, fault.InvalidRecipient
	}
	return allocation.Remaining(participant)
}

// Unit - fetch and decode the record of an issued unit
func (e *engine) Unit(unitId uint64) (*unitrecord.UnitIssue, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	packed := globalData.handles.Units.Get(uint64Key(unitId))
	if nil == packed {
		return nil, fault.UnitNotFound
	}

	record, _, err := unitrecord.Packed(packed).Unpack(mode.IsTesting())
	if nil != err {
		return nil, err
	}

	issue, ok := record.(*unitrecord.UnitIssue)
	if !ok {
		return nil, fault.NotUnitRecord
	}
	return issue, nil
}

// OwnerOf - the current owner of an issued unit
func (e *engine) OwnerOf(unitId uint64) (*account.Account, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	return ownership.OwnerOf(nil, unitId)
}
