// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metadata - collection metadata and per unit pointers
//
// Each unit resolves to a metadata URI.  A sparse override pool holds
// URIs fixed for individual units, any unit without an override falls
// back to the base URI with the decimal unit identifier and a ".json"
// suffix appended.  The base URI may change at any time and rewrites
// the resolution of every non-overridden unit, already stored
// overrides are unaffected.
//
// The provenance hash is a one-shot commitment to the off-ledger
// content, once stored it can never be replaced.
package metadata

import (
	"encoding/binary"
	"strconv"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/storage"
)

// sale state pool keys
var (
	baseURIKey    = []byte("baseuri")
	provenanceKey = []byte("provenance")
)

var globalData struct {
	sync.RWMutex
	log       *logger.L
	saleState storage.Handle
	unitURIs  storage.Handle

	// set once during initialise
	initialised bool
}

// Initialise - set up the metadata pools
func Initialise(saleState storage.Handle, unitURIs storage.Handle) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("metadata")
	globalData.log.Info("starting…")

	if nil == saleState || nil == unitURIs {
		return fault.DatabaseIsNotSet
	}

	globalData.saleState = saleState
	globalData.unitURIs = unitURIs

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the metadata pools
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.Lock()
	globalData.saleState = nil
	globalData.unitURIs = nil

	// finally...
	globalData.initialised = false
	globalData.Unlock()

	return nil
}

// SetBaseURI - stage the collection base URI
func SetBaseURI(trx storage.Transaction, uri string) error {
	return trx.Put(globalData.saleState, baseURIKey, []byte(uri))
}

// SetUnitURI - stage the URI override for one unit
//
// an empty URI removes the override so the unit falls back to the
// base URI resolution
func SetUnitURI(trx storage.Transaction, unitId uint64, uri string) error {
	if "" == uri {
		return trx.Delete(globalData.unitURIs, uint64Key(unitId))
	}
	return trx.Put(globalData.unitURIs, uint64Key(unitId), []byte(uri))
}

// SetProvenance - stage the provenance hash
//
// the hash is write-once, a second store fails no matter the value
func SetProvenance(trx storage.Transaction, hash string) error {
	if "" == hash {
		return fault.MissingParameters
	}

	stored, err := trx.Get(globalData.saleState, provenanceKey)
	if nil != err {
		return err
	}
	if 0 != len(stored) {
		return fault.AlreadySet
	}

	return trx.Put(globalData.saleState, provenanceKey, []byte(hash))
}

// BaseURI - the stored base URI
func BaseURI() string {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return ""
	}
	return string(globalData.saleState.Get(baseURIKey))
}

// Provenance - the stored provenance hash or empty if never set
func Provenance() string {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return ""
	}
	return string(globalData.saleState.Get(provenanceKey))
}

// UnitURI - resolve the metadata URI for a unit
//
// the caller is responsible for checking the unit exists
func UnitURI(unitId uint64) string {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return ""
	}

	override := globalData.unitURIs.Get(uint64Key(unitId))
	if 0 != len(override) {
		return string(override)
	}

	base := string(globalData.saleState.Get(baseURIKey))
	return base + strconv.FormatUint(unitId, 10) + ".json"
}

// big endian unit identifier as the pool key
func uint64Key(unitId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, unitId)
	return key
}
