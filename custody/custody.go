// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package custody - the accumulated payment balance
//
// Payments received for issues accumulate in custody until an admin
// withdraws them.  The ledger only tracks the balance, the outbound
// movement of funds is delegated to a Transferrer so a deployment can
// plug in its own settlement; the default transferrer just records
// the payout intent in the log and succeeds.
package custody

import (
	"math"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/storage"
)

// Transferrer - executes the outbound side of a withdrawal
type Transferrer interface {
	Transfer(recipient *account.Account, amount uint64) error
}

// sale state pool key
var custodyKey = []byte("custody")

var globalData struct {
	sync.RWMutex
	log         *logger.L
	saleState   storage.Handle
	transferrer Transferrer

	// set once during initialise
	initialised bool
}

// Initialise - set up the custody balance
//
// a nil transferrer installs the recording default
func Initialise(saleState storage.Handle, transferrer Transferrer) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("custody")
	globalData.log.Info("starting…")

	if nil == saleState {
		return fault.DatabaseIsNotSet
	}

	if nil == transferrer {
		transferrer = &recorder{log: globalData.log}
	}

	globalData.saleState = saleState
	globalData.transferrer = transferrer

	balance, _ := saleState.GetN(custodyKey)
	globalData.log.Infof("balance: %d", balance)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the custody balance
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.Lock()
	globalData.saleState = nil
	globalData.transferrer = nil

	// finally...
	globalData.initialised = false
	globalData.Unlock()

	return nil
}

// Credit - stage the addition of a received payment
//
// a payment that would take the balance past the representable
// maximum fails the whole issue, the balance never wraps
func Credit(trx storage.Transaction, amount uint64) error {

	balance, _, err := trx.GetN(globalData.saleState, custodyKey)
	if nil != err {
		return err
	}
	if amount > math.MaxUint64-balance {
		return fault.CustodyOverflow
	}
	return trx.PutN(globalData.saleState, custodyKey, balance+amount)
}

// Debit - stage the removal of a payout
//
// a balance below the requested amount fails the whole withdrawal
func Debit(trx storage.Transaction, amount uint64) error {

	balance, _, err := trx.GetN(globalData.saleState, custodyKey)
	if nil != err {
		return err
	}
	if amount > balance {
		return fault.TransferFailed
	}
	return trx.PutN(globalData.saleState, custodyKey, balance-amount)
}

// Payout - execute the outbound transfer
//
// any transferrer failure is reported as a transfer failure so the
// caller can abort the staged debit
func Payout(recipient *account.Account, amount uint64) error {

	err := globalData.transferrer.Transfer(recipient, amount)
	if nil != err {
		globalData.log.Errorf("payout of: %d to: %s failed: %s", amount, recipient, err)
		return fault.TransferFailed
	}
	return nil
}

// Balance - the committed custody balance
func Balance() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return 0
	}
	balance, _ := globalData.saleState.GetN(custodyKey)
	return balance
}

// the default transferrer, settlement happens off ledger so just
// record the intent
type recorder struct {
	log *logger.L
}

func (r *recorder) Transfer(recipient *account.Account, amount uint64) error {
	r.log.Infof("payout: %d to: %s", amount, recipient)
	return nil
}
