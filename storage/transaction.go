package storage

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/bitmark-inc/mintd/fault"
)

// Transaction - grouped updates applied to all databases or none
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte) error
	DumpTx() []byte
	Get(Handle, []byte) ([]byte, error)
	GetN(Handle, []byte) (uint64, bool, error)
	GetNB(Handle, []byte) (uint64, []byte, error)
	Has(Handle, []byte) (bool, error)
	InUse() bool
	Put(Handle, []byte, []byte) error
	PutN(Handle, []byte, uint64) error
}

type TransactionData struct {
	sync.Mutex
	inUse  bool
	access []DataAccess
}

func newTransaction(access []DataAccess) Transaction {
	return &TransactionData{
		inUse:  false,
		access: access,
	}
}

// reject operations on a missing pool, e.g. before Initialise
func isNilPtr(h interface{}) error {
	if nil == h {
		return fault.DatabaseIsNotSet
	}
	v := reflect.ValueOf(h)
	if reflect.Ptr == v.Kind() && v.IsNil() {
		return fault.DatabaseIsNotSet
	}
	return nil
}

func (t *TransactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fmt.Errorf("transaction already in use")
	}

	for _, access := range t.access {
		err := access.Begin()
		if nil != err {
			return err
		}
	}

	t.inUse = true
	return nil
}

func (t *TransactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()

	return t.inUse
}

func (t *TransactionData) Put(h Handle, key []byte, value []byte) error {
	err := isNilPtr(h)
	if nil != err {
		return err
	}
	h.put(key, value)
	return nil
}

func (t *TransactionData) PutN(h Handle, key []byte, value uint64) error {
	err := isNilPtr(h)
	if nil != err {
		return err
	}
	h.putN(key, value)
	return nil
}

func (t *TransactionData) Delete(h Handle, key []byte) error {
	err := isNilPtr(h)
	if nil != err {
		return err
	}
	h.remove(key)
	return nil
}

func (t *TransactionData) Get(h Handle, key []byte) ([]byte, error) {
	err := isNilPtr(h)
	if nil != err {
		return nil, err
	}
	return h.Get(key), nil
}

func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool, error) {
	err := isNilPtr(h)
	if nil != err {
		return 0, false, err
	}
	n, found := h.getN(key)
	return n, found, nil
}

func (t *TransactionData) GetNB(h Handle, key []byte) (uint64, []byte, error) {
	err := isNilPtr(h)
	if nil != err {
		return 0, nil, err
	}
	n, buffer := h.getNB(key)
	return n, buffer, nil
}

func (t *TransactionData) Has(h Handle, key []byte) (bool, error) {
	err := isNilPtr(h)
	if nil != err {
		return false, err
	}
	return h.Has(key), nil
}

// Commit - write all staged changes
//
// each database commit also resets its batch and releases the
// transaction hold on it
func (t *TransactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.access {
		err := access.Commit()
		if nil != err {
			return err
		}
	}

	t.inUse = false
	return nil
}

// Abort - discard all staged changes
func (t *TransactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.access {
		access.Abort()
	}

	t.inUse = false
}

// DumpTx - dump the pending operations of all batches
func (t *TransactionData) DumpTx() []byte {
	dump := []byte{}
	for _, access := range t.access {
		dump = append(dump, access.DumpTx()...)
	}
	return dump
}
