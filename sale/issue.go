// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/allocation"
	"github.com/bitmark-inc/mintd/authority"
	"github.com/bitmark-inc/mintd/custody"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/messagebus"
	"github.com/bitmark-inc/mintd/ownership"
	"github.com/bitmark-inc/mintd/phase"
	"github.com/bitmark-inc/mintd/storage"
	"github.com/bitmark-inc/mintd/supply"
	"github.com/bitmark-inc/mintd/unitrecord"
)

// PreSaleIssue - mint units to an allocated participant
//
// checks run in a fixed order: phase, payment, allocation, supply
func (e *engine) PreSaleIssue(caller *account.Account, count uint64, payment uint64) ([]uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if nil == caller || caller.IsZero() {
		return nil, fault.InvalidRecipient
	}
	if 0 == count {
		return nil, fault.InvalidCount
	}

	if phase.PreSale != globalData.currentPhase {
		return nil, fault.PhaseNotActive
	}
	if insufficientPayment(count, payment) {
		return nil, fault.InsufficientPayment
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	err = allocation.Consume(trx, caller, count)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	firstId, err := supply.Issue(trx, count)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = custody.Credit(trx, payment)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	unitIds, packedRecords, err := stageIssue(trx, firstId, count, caller, unitrecord.PreSaleOrigin, globalData.currentPrice)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("pre-sale issue: %d units to: %s  first id: %d", count, caller, firstId)
	broadcastMinted(unitIds, packedRecords)

	return unitIds, nil
}

// PublicIssue - mint units to any direct caller
//
// checks run in a fixed order: phase, transaction limit, payment,
// caller classification, supply
func (e *engine) PublicIssue(caller *account.Account, count uint64, payment uint64) ([]uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if nil == caller || caller.IsZero() {
		return nil, fault.InvalidRecipient
	}
	if 0 == count {
		return nil, fault.InvalidCount
	}

	if phase.PublicSale != globalData.currentPhase {
		return nil, fault.PhaseNotActive
	}
	if count > globalData.maxPerTransaction {
		return nil, fault.PerTransactionLimitExceeded
	}
	if insufficientPayment(count, payment) {
		return nil, fault.InsufficientPayment
	}
	if nil != globalData.classifier && globalData.classifier(caller) {
		return nil, fault.ContractCallerForbidden
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	firstId, err := supply.Issue(trx, count)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = custody.Credit(trx, payment)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	unitIds, packedRecords, err := stageIssue(trx, firstId, count, caller, unitrecord.PublicSaleOrigin, globalData.currentPrice)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("public issue: %d units to: %s  first id: %d", count, caller, firstId)
	broadcastMinted(unitIds, packedRecords)

	return unitIds, nil
}

// ReserveForRecipient - mint from the reserved pool without payment
//
// works in any phase, the reservation cap bounds the total that can
// ever be granted this way
func (e *engine) ReserveForRecipient(caller *account.Account, recipient *account.Account, count uint64) ([]uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if !authority.HasCapability(caller, authority.ProjectAdmin) {
		return nil, fault.Unauthorized
	}
	if nil == recipient || recipient.IsZero() {
		return nil, fault.InvalidRecipient
	}
	if 0 == count {
		return nil, fault.InvalidCount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	firstId, err := supply.ReserveAndIssue(trx, count)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	unitIds, packedRecords, err := stageIssue(trx, firstId, count, recipient, unitrecord.ReservedOrigin, 0)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	globalData.log.Infof("reserved issue: %d units to: %s  first id: %d", count, recipient, firstId)
	broadcastMinted(unitIds, packedRecords)

	return unitIds, nil
}

// WithdrawFunds - pay out held funds to a recipient
//
// a rejecting transfer mechanism aborts the debit so the recorded
// balance never drops without a matching payout
func (e *engine) WithdrawFunds(caller *account.Account, recipient *account.Account, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if !authority.HasCapability(caller, authority.Admin) {
		return fault.Unauthorized
	}
	if nil == recipient || recipient.IsZero() {
		return fault.InvalidRecipient
	}
	if 0 == amount {
		return fault.InvalidCount
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = custody.Debit(trx, amount)
	if nil != err {
		trx.Abort()
		return err
	}

	err = custody.Payout(recipient, amount)
	if nil != err {
		trx.Abort()
		return fault.TransferFailed
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Infof("withdraw: %d to: %s", amount, recipient)
	return nil
}

// compare price·count against the payment without overflow
//
// a zero price makes any payment sufficient
func insufficientPayment(count uint64, payment uint64) bool {
	price := globalData.currentPrice
	if 0 == price {
		return false
	}
	if count > math.MaxUint64/price {
		return true
	}
	return payment < price*count
}

// stage the records for a batch of newly issued units
//
// must be called with the engine lock held and supply already
// advanced for the whole range
func stageIssue(trx storage.Transaction, firstId uint64, count uint64, owner *account.Account, origin unitrecord.Origin, price uint64) ([]uint64, []unitrecord.Packed, error) {

	timestamp := uint64(time.Now().UTC().Unix())

	unitIds := make([]uint64, 0, count)
	packedRecords := make([]unitrecord.Packed, 0, count)

	for i := uint64(0); i < count; i += 1 {
		unitId := firstId + i

		issue := &unitrecord.UnitIssue{
			Id:        unitId,
			Owner:     owner,
			Origin:    origin,
			Price:     price,
			Timestamp: timestamp,
		}

		packed, err := issue.Pack()
		if nil != err {
			return nil, nil, err
		}

		err = trx.Put(globalData.handles.Units, uint64Key(unitId), packed)
		if nil != err {
			return nil, nil, err
		}

		err = ownership.Append(trx, owner, unitId)
		if nil != err {
			return nil, nil, err
		}

		unitIds = append(unitIds, unitId)
		packedRecords = append(packedRecords, packed)
	}

	return unitIds, packedRecords, nil
}

// announce the new units, only after commit
//
// each message carries the unit id, the packed record and its digest
// so subscribers can track a unit without re-hashing the record
func broadcastMinted(unitIds []uint64, packedRecords []unitrecord.Packed) {
	for i, unitId := range unitIds {
		digest := packedRecords[i].MakeDigest()
		messagebus.Bus.Broadcast.Send("minted", uint64Key(unitId), packedRecords[i], digest.Bytes())
	}
}

// convert a counter to its 8 byte big endian form
func uint64Key(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}
