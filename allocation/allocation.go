// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package allocation - per participant pre-sale quotas
//
// A project admin grants each pre-sale participant a quota of units.
// Every pre-sale issue consumes quota, an exhausted entry is removed
// so the pool only ever holds participants that can still buy.
//
// Entries are keyed by the packed account bytes.  Checks read through
// the caller's transaction so an issue and its quota decrement commit
// or fail together.
package allocation

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/storage"
)

var globalData struct {
	sync.RWMutex
	log         *logger.L
	allocations storage.Handle

	// set once during initialise
	initialised bool
}

// Initialise - set up the allocation pool
func Initialise(allocations storage.Handle) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("allocation")
	globalData.log.Info("starting…")

	if nil == allocations {
		return fault.DatabaseIsNotSet
	}

	globalData.allocations = allocations

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the allocation pool
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.Lock()
	globalData.allocations = nil

	// finally...
	globalData.initialised = false
	globalData.Unlock()

	return nil
}

// Set - stage the quota for one participant
//
// overwrites any previous quota, a zero quota removes the entry
func Set(trx storage.Transaction, participant *account.Account, quota uint64) error {

	if nil == participant || participant.IsZero() {
		return fault.InvalidRecipient
	}

	key := participant.Bytes()
	if 0 == quota {
		return trx.Delete(globalData.allocations, key)
	}
	return trx.PutN(globalData.allocations, key, quota)
}

// Consume - stage the consumption of n units of quota
//
// a missing entry and a short entry are the same failure, the exact
// remainder is never revealed to an over-asking caller
func Consume(trx storage.Transaction, participant *account.Account, n uint64) error {

	if nil == participant || participant.IsZero() {
		return fault.InvalidRecipient
	}

	key := participant.Bytes()
	quota, found, err := trx.GetN(globalData.allocations, key)
	if nil != err {
		return err
	}
	if !found || n > quota {
		return fault.InsufficientAllocation
	}

	if n == quota {
		return trx.Delete(globalData.allocations, key)
	}
	return trx.PutN(globalData.allocations, key, quota-n)
}

// Remaining - committed quota for a participant
func Remaining(participant *account.Account) (uint64, error) {

	if nil == participant || participant.IsZero() {
		return 0, fault.InvalidRecipient
	}

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	quota, found := globalData.allocations.GetN(participant.Bytes())
	if !found {
		return 0, fault.AllocationNotConfigured
	}
	return quota, nil
}
