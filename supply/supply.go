// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package supply - the capped issue counters
//
// The number of issued units only ever increases and may never pass
// the configured cap.  A portion of the cap up to the reservation cap
// may be issued without payment to recipients chosen by a project
// admin; reserved issues count towards the ordinary supply as well.
//
// Both counters are stored in the sale state pool so that a restart
// resumes exactly where the previous run stopped.  All checks read
// through the caller's transaction, updates only take effect when the
// caller commits.
package supply

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/storage"
)

// sale state pool keys
var (
	issuedKey   = []byte("issued")
	reservedKey = []byte("reserved")
)

// configuration read once during initialise
var globalData struct {
	sync.RWMutex
	log            *logger.L
	saleState      storage.Handle
	cap            uint64
	reservationCap uint64

	// set once during initialise
	initialised bool
}

// Initialise - set up the supply counters
//
// the cap must be at least one and the reservation cap strictly below
// it, stored counters outside those bounds indicate a broken database
func Initialise(saleState storage.Handle, cap uint64, reservationCap uint64) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("supply")
	globalData.log.Info("starting…")

	if nil == saleState {
		return fault.DatabaseIsNotSet
	}
	if 0 == cap || reservationCap >= cap {
		return fault.InvalidCapacity
	}

	globalData.saleState = saleState
	globalData.cap = cap
	globalData.reservationCap = reservationCap

	issued, _ := saleState.GetN(issuedKey)
	reserved, _ := saleState.GetN(reservedKey)
	if issued > cap || reserved > reservationCap || reserved > issued {
		globalData.log.Criticalf("stored counters out of range: issued: %d  reserved: %d", issued, reserved)
		return fault.InvalidCapacity
	}

	globalData.log.Infof("cap: %d  reservation cap: %d", cap, reservationCap)
	globalData.log.Infof("issued: %d  reserved: %d", issued, reserved)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the supply counters
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.Lock()
	globalData.saleState = nil

	// finally...
	globalData.initialised = false
	globalData.Unlock()

	return nil
}

// Issue - stage the issue of n further units
//
// returns the identifier of the first new unit, identifiers are
// allocated sequentially from zero
//
// the check reads through the transaction so earlier staged updates
// are seen, nothing changes until the transaction commits
func Issue(trx storage.Transaction, n uint64) (uint64, error) {

	issued, _, err := trx.GetN(globalData.saleState, issuedKey)
	if nil != err {
		return 0, err
	}

	// subtraction form to avoid overflow of issued+n
	if n > globalData.cap-issued {
		return 0, fault.SupplyExceeded
	}

	err = trx.PutN(globalData.saleState, issuedKey, issued+n)
	if nil != err {
		return 0, err
	}

	return issued, nil
}

// ReserveAndIssue - stage the issue of n reserved units
//
// reserved units consume the reservation cap and the ordinary supply
// cap together
func ReserveAndIssue(trx storage.Transaction, n uint64) (uint64, error) {

	reserved, _, err := trx.GetN(globalData.saleState, reservedKey)
	if nil != err {
		return 0, err
	}

	if n > globalData.reservationCap-reserved {
		return 0, fault.ReservationExceeded
	}

	firstId, err := Issue(trx, n)
	if nil != err {
		return 0, err
	}

	err = trx.PutN(globalData.saleState, reservedKey, reserved+n)
	if nil != err {
		return 0, err
	}

	return firstId, nil
}

// Issued - count of committed issued units
func Issued() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return 0
	}
	n, _ := globalData.saleState.GetN(issuedKey)
	return n
}

// Reserved - count of committed reserved units
func Reserved() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return 0
	}
	n, _ := globalData.saleState.GetN(reservedKey)
	return n
}

// Cap - the total supply limit
func Cap() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.cap
}

// ReservationCap - the reserved issue limit
func ReservationCap() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.reservationCap
}
