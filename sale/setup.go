// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sale - the sale state machine
//
// composes authority, phase, supply, allocation, metadata, custody
// and ownership into the operations callable over RPC
//
// a single lock serialises every mutating operation for its whole
// check-stage-commit span, all writes of one operation go into one
// storage transaction and the in-memory phase and price mirrors only
// change after that transaction commits
package sale

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/phase"
	"github.com/bitmark-inc/mintd/storage"
	"github.com/bitmark-inc/mintd/unitrecord"
)

// CallerClassifier - predicate marking programmatic callers
//
// a true result bars the account from the public sale path, a nil
// classifier treats every caller as a direct participant
type CallerClassifier func(*account.Account) bool

// Handles - storage pools written directly by the engine
type Handles struct {
	Units     storage.Handle
	SaleState storage.Handle
}

// Engine - interface for sale operations
type Engine interface {
	SetPhase(caller *account.Account, newPhase phase.Phase) error
	SetPrice(caller *account.Account, price uint64) error
	SetAllocation(caller *account.Account, participants []*account.Account, quota uint64) error
	SetProvenance(caller *account.Account, hash string) error
	SetBaseURI(caller *account.Account, uri string) error
	SetUnitURI(caller *account.Account, unitId uint64, uri string) error
	ReserveForRecipient(caller *account.Account, recipient *account.Account, count uint64) ([]uint64, error)
	WithdrawFunds(caller *account.Account, recipient *account.Account, amount uint64) error

	PreSaleIssue(caller *account.Account, count uint64, payment uint64) ([]uint64, error)
	PublicIssue(caller *account.Account, count uint64, payment uint64) ([]uint64, error)

	CurrentPhase() phase.Phase
	CurrentPrice() uint64
	Info() Info
	UnitURI(unitId uint64) (string, error)
	ProvenanceHash() string
	Allocation(participant *account.Account) (uint64, error)
	Unit(unitId uint64) (*unitrecord.UnitIssue, error)
	OwnerOf(unitId uint64) (*account.Account, error)
}

// the engine handle returned by Get
type engine struct{}

// keys into the sale state pool
var (
	phaseKey = []byte("phase")
	priceKey = []byte("price")
)

// globals
type globalDataType struct {
	sync.RWMutex
	log *logger.L

	handles Handles

	// mirrors of persisted state, only updated after commit
	currentPhase phase.Phase
	currentPrice uint64

	maxPerTransaction uint64
	classifier        CallerClassifier

	initialised bool
}

// global storage
var globalData globalDataType

// Initialise - set up the sale state machine
//
// the stored phase and price are authoritative, the initial price
// only seeds the store on the very first start
func Initialise(handles Handles, maxPerTransaction uint64, initialPrice uint64, classifier CallerClassifier) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("sale")
	globalData.log.Info("starting…")

	if nil == handles.Units || nil == handles.SaleState {
		return fault.DatabaseIsNotSet
	}
	if 0 == maxPerTransaction {
		globalData.log.Error("maximum per transaction cannot be zero")
		return fault.InvalidCount
	}

	globalData.handles = handles
	globalData.maxPerTransaction = maxPerTransaction
	globalData.classifier = classifier

	storedPhase, phaseFound := handles.SaleState.GetN(phaseKey)
	storedPrice, priceFound := handles.SaleState.GetN(priceKey)

	globalData.currentPhase = phase.Paused
	if phaseFound {
		p := phase.Phase(storedPhase)
		if !p.IsValid() {
			globalData.log.Criticalf("stored phase out of range: %d", storedPhase)
			return fault.InvalidPhase
		}
		globalData.currentPhase = p
	}

	globalData.currentPrice = initialPrice
	if priceFound {
		globalData.currentPrice = storedPrice
	}

	if !phaseFound || !priceFound {
		trx, err := storage.NewDBTransaction()
		if nil != err {
			return err
		}
		err = trx.PutN(handles.SaleState, phaseKey, uint64(globalData.currentPhase))
		if nil != err {
			trx.Abort()
			return err
		}
		err = trx.PutN(handles.SaleState, priceKey, globalData.currentPrice)
		if nil != err {
			trx.Abort()
			return err
		}
		err = trx.Commit()
		if nil != err {
			return err
		}
	}

	globalData.log.Infof("phase: %s  price: %d  maximum per transaction: %d",
		globalData.currentPhase, globalData.currentPrice, globalData.maxPerTransaction)

	globalData.initialised = true
	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Get - return the engine interface
func Get() Engine {
	return &engine{}
}
