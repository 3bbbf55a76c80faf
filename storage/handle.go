// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/mintd/fault"
)

const uint64ByteSize = 8

// Handle - access to a single pool
//
// the unexported update methods restrict grouped updates to the
// storage.Transaction implementation in this package
type Handle interface {
	Begin()
	Commit() error
	Delete([]byte)
	Get([]byte) []byte
	GetN([]byte) (uint64, bool)
	GetNB([]byte) (uint64, []byte)
	Has([]byte) bool
	LastElement() (Element, bool)
	NewFetchCursor() *FetchCursor
	Put([]byte, []byte)
	PutN([]byte, uint64)
	Ready() bool

	getN([]byte) (uint64, bool)
	getNB([]byte) (uint64, []byte)
	put([]byte, []byte)
	putN([]byte, uint64)
	remove([]byte)
}

// PoolHandle - handle for a storage pool
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess DataAccess
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - stage a key/value bytes pair
//
// the pair only reaches the database when the current batch is
// committed, but is visible to Get/Has in the meantime
func (p *PoolHandle) Put(key []byte, value []byte) {
	if nil == p.dataAccess {
		logger.Panic("pool.Put nil dataAccess")
		return
	}
	p.dataAccess.Put(p.prefixKey(key), value)
}

func (p *PoolHandle) put(key []byte, value []byte) {
	p.Put(key, value)
}

// PutN - stage a key with an 8 byte big endian value
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

func (p *PoolHandle) putN(key []byte, value uint64) {
	p.PutN(key, value)
}

// Delete - stage removal of a key
func (p *PoolHandle) Delete(key []byte) {
	if nil == p.dataAccess {
		logger.Panic("pool.Delete nil dataAccess")
		return
	}
	p.dataAccess.Delete(p.prefixKey(key))
}

func (p *PoolHandle) remove(key []byte) {
	p.Delete(key)
}

// Get - read a value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	if nil == p.dataAccess {
		return nil
	}
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < uint64ByteSize {
		logger.Panicf("pool.GetN truncated record for: %x: %s", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:uint64ByteSize])
	return n, true
}

func (p *PoolHandle) getN(key []byte) (uint64, bool) {
	return p.GetN(key)
}

// GetNB - read a record and decode first 8 bytes as big endian uint64
// and return the rest of the record as byte slice
//
// second parameter is nil if record was not found
// panics if not 9 (or more) bytes in the record
// this returns the actual element in the second parameter - copy the result if it must be preserved
func (p *PoolHandle) GetNB(key []byte) (uint64, []byte) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, nil
	}
	if len(buffer) < uint64ByteSize+1 { // must have at least one byte after the N value
		logger.Panicf("pool.GetNB truncated record for: %x: %s", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:uint64ByteSize])
	return n, buffer[uint64ByteSize:]
}

func (p *PoolHandle) getNB(key []byte) (uint64, []byte) {
	return p.GetNB(key)
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	if nil == p.dataAccess {
		return false
	}
	value, err := p.dataAccess.Has(p.prefixKey(key))
	logger.PanicIfError("pool.Has", err)
	return value
}

// Begin - mark the underlying batch as busy for direct pool updates
func (p *PoolHandle) Begin() {
	if nil == p.dataAccess {
		logger.Panic("pool.Begin nil dataAccess")
		return
	}
	err := p.dataAccess.Begin()
	logger.PanicIfError("pool.Begin", err)
}

// Commit - write the staged changes to the database
func (p *PoolHandle) Commit() error {
	if nil == p.dataAccess {
		return fault.DatabaseIsNotSet
	}
	return p.dataAccess.Commit()
}

// Ready - check the pool is attached to a database
func (p *PoolHandle) Ready() bool {
	return nil != p && nil != p.dataAccess
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	if nil == p.dataAccess {
		return Element{}, false
	}

	iter := p.dataAccess.Iterator(&maxRange)

	found := false
	result := Element{}
	if iter.Last() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result.Key = dataKey
		result.Value = dataValue
		found = true
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.LastElement", err)
	return result, found
}
