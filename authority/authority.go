// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/fault"
)

// Capability - type to hold a granted capability
type Capability int

// all possible capabilities
const (
	Admin Capability = iota
	ProjectAdmin
	maximum
)

// the accounts holding each capability
//
// map keys are the packed account bytes
var globalData struct {
	sync.RWMutex
	log           *logger.L
	operator      *account.Account
	admins        map[string]struct{}
	projectAdmins map[string]struct{}

	// set once during initialise
	initialised bool
}

// Initialise - set up the capability sets
//
// the operator is the account that configured the deployment and is
// granted every capability, the other lists extend the sets
func Initialise(operator *account.Account, admins []*account.Account, projectAdmins []*account.Account) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("authority")
	globalData.log.Info("starting…")

	if nil == operator || operator.IsZero() {
		return fault.InvalidRecipient
	}

	globalData.operator = operator
	globalData.admins = map[string]struct{}{
		string(operator.Bytes()): {},
	}
	globalData.projectAdmins = map[string]struct{}{
		string(operator.Bytes()): {},
	}

	for _, a := range admins {
		if nil == a || a.IsZero() {
			return fault.InvalidRecipient
		}
		globalData.admins[string(a.Bytes())] = struct{}{}
	}
	for _, a := range projectAdmins {
		if nil == a || a.IsZero() {
			return fault.InvalidRecipient
		}
		globalData.projectAdmins[string(a.Bytes())] = struct{}{}
	}

	globalData.log.Infof("operator: %s", operator)
	globalData.log.Infof("admins: %d  project admins: %d",
		len(globalData.admins), len(globalData.projectAdmins))

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the capability sets
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.Lock()
	globalData.operator = nil
	globalData.admins = nil
	globalData.projectAdmins = nil

	// finally...
	globalData.initialised = false
	globalData.Unlock()

	return nil
}

// HasCapability - check if an account holds a capability
func HasCapability(acc *account.Account, capability Capability) bool {
	if nil == acc {
		return false
	}

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false
	}

	switch capability {
	case Admin:
		_, ok := globalData.admins[string(acc.Bytes())]
		return ok
	case ProjectAdmin:
		_, ok := globalData.projectAdmins[string(acc.Bytes())]
		return ok
	default:
		return false
	}
}

// Operator - the account the deployment was configured with
func Operator() *account.Account {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.operator
}

// String - capability represented as a string
func (c Capability) String() string {
	switch c {
	case Admin:
		return "Admin"
	case ProjectAdmin:
		return "ProjectAdmin"
	default:
		return "*Unknown*"
	}
}
