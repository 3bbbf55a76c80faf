// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - CURVE encrypted event fan-out
//
// every committed sale mutation lands on the messagebus broadcast
// queue and is sent from here as a multipart [command, parameters…]
// message over a ZeroMQ PUB socket, so indexers and wallets can
// follow issuance without polling the RPC interface
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/background"
	"github.com/bitmark-inc/mintd/fault"
	"github.com/bitmark-inc/mintd/zmqutil"
)

// Configuration - a block of configuration data
// this is read from the configuration file
//
// PrivateKey and PublicKey hold tagged key text as written by the
// generate-broadcast-key command, normally spliced into the
// configuration script with read_file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting phase changes, issues etc.

	publicKey []byte
	addresses []string

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start the broadcasting background process
func Initialise(configuration *Configuration) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	// read the keys
	privateKey, err := zmqutil.ReadPrivateKey(configuration.PrivateKey)
	if nil != err {
		globalData.log.Errorf("read private key error: %s", err)
		return err
	}
	publicKey, err := zmqutil.ReadPublicKey(configuration.PublicKey)
	if nil != err {
		globalData.log.Errorf("read public key error: %s", err)
		return err
	}
	globalData.log.Tracef("private key: %q", privateKey)
	globalData.log.Tracef("public key:  %q", publicKey)

	globalData.publicKey = publicKey
	globalData.addresses = configuration.Broadcast

	if err := globalData.brdc.initialise(privateKey, publicKey, configuration.Broadcast); nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// PublicKey - the CURVE server key a subscriber needs to connect
//
// empty when broadcasting is not configured
func PublicKey() []byte {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.publicKey
}

// Addresses - the configured broadcast bind addresses
//
// empty when broadcasting is not configured
func Addresses() []string {
	globalData.RLock()
	defer globalData.RUnlock()

	if 0 == len(globalData.addresses) {
		return nil
	}
	addresses := make([]string, len(globalData.addresses))
	copy(addresses, globalData.addresses)
	return addresses
}
