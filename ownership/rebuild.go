// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/mode"
	"github.com/bitmark-inc/mintd/storage"
	"github.com/bitmark-inc/mintd/unitrecord"
)

// units to index per database transaction
const rebuildBatchSize = 100

// Rebuild - regenerate the ownership index from the unit ledger
//
// called during startup when storage reports that the index database
// was dropped, the index pools are empty at this point so the units
// are simply appended in ledger order
func Rebuild(units storage.Handle) error {
	// ensure single threaded
	toLock.Lock()
	defer toLock.Unlock()

	if nil == units {
		return fault.DatabaseIsNotSet
	}

	log := logger.New("ownership")
	log.Info("rebuilding index…")

	cursor := units.NewFetchCursor()
	total := 0

	for {
		items, err := cursor.Fetch(rebuildBatchSize)
		if nil != err {
			return err
		}
		if 0 == len(items) {
			log.Infof("rebuilt index for %d units", total)
			return nil
		}

		trx, err := storage.NewDBTransaction()
		if nil != err {
			return err
		}

		for _, item := range items {
			if uint64ByteSize != len(item.Key) {
				trx.Abort()
				log.Criticalf("invalid unit key: %x", item.Key)
				return fault.NotUnitRecord
			}
			unitId := binary.BigEndian.Uint64(item.Key)

			record, _, err := unitrecord.Packed(item.Value).Unpack(mode.IsTesting())
			if nil != err {
				trx.Abort()
				log.Criticalf("unit: %d  unpack error: %s", unitId, err)
				return err
			}

			issue, ok := record.(*unitrecord.UnitIssue)
			if !ok {
				trx.Abort()
				log.Criticalf("unit: %d  unexpected record: %v", unitId, record)
				return fault.NotUnitRecord
			}

			err = create(trx, issue.Owner, unitId)
			if nil != err {
				trx.Abort()
				return err
			}
		}

		err = trx.Commit()
		if nil != err {
			return err
		}
		total += len(items)
	}
}
