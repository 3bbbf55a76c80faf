// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/allocation"
	"github.com/bitmark-inc/mintd/authority"
	"github.com/bitmark-inc/mintd/custody"
	"github.com/bitmark-inc/mintd/metadata"
	"github.com/bitmark-inc/mintd/mode"
	"github.com/bitmark-inc/mintd/ownership"
	"github.com/bitmark-inc/mintd/publish"
	"github.com/bitmark-inc/mintd/rpc"
	"github.com/bitmark-inc/mintd/sale"
	"github.com/bitmark-inc/mintd/storage"
	"github.com/bitmark-inc/mintd/supply"
	"github.com/bitmark-inc/mintd/zmqutil"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// start a profiling http server
	// this uses the default builtin HTTP handler
	// and is not associated with the normal ClientRPC HTTPS server
	if "" != theConfiguration.ProfileHTTP {
		go func() {
			log.Warnf("profile listener on: %s", theConfiguration.ProfileHTTP)
			err := http.ListenAndServe(theConfiguration.ProfileHTTP, nil)
			exitwithstatus.Message("profile error: %s", err)
		}()
	}

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpsRPC", theConfiguration.HttpsRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	mustReindex, err := storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// the ownership index reads and writes these pools
	ownership.Initialise(
		storage.Pool.OwnerNextCount,
		storage.Pool.OwnerList,
		storage.Pool.OwnerUnitIndex,
		storage.Pool.UnitOwners,
	)

	// an interrupted reindex or a version upgrade dropped the index
	// database, so it must be rebuilt from the unit ledger
	if mustReindex {
		log.Warn("rebuilding ownership index from the unit ledger")
		err = ownership.Rebuild(storage.Pool.Units)
		if nil != err {
			log.Criticalf("ownership rebuild error: %s", err)
			exitwithstatus.Message("ownership rebuild error: %s", err)
		}
		err = storage.ReindexDone()
		if nil != err {
			log.Criticalf("reindex completion error: %s", err)
			exitwithstatus.Message("reindex completion error: %s", err)
		}
		log.Info("ownership index rebuild completed")
	}

	// privileged accounts from the configuration
	operator, err := account.AccountFromBase58(theConfiguration.Authority.Operator)
	if nil != err {
		log.Criticalf("operator account: %q error: %s", theConfiguration.Authority.Operator, err)
		exitwithstatus.Message("operator account: %q error: %s", theConfiguration.Authority.Operator, err)
	}
	if operator.IsTesting() != mode.IsTesting() {
		log.Criticalf("operator account: %q and chain: %q mismatch", theConfiguration.Authority.Operator, theConfiguration.Chain)
		exitwithstatus.Message("operator account: %q and chain: %q mismatch", theConfiguration.Authority.Operator, theConfiguration.Chain)
	}
	admins, err := parseAccounts(theConfiguration.Authority.Admins)
	if nil != err {
		log.Criticalf("admin %s", err)
		exitwithstatus.Message("admin %s", err)
	}
	projectAdmins, err := parseAccounts(theConfiguration.Authority.ProjectAdmins)
	if nil != err {
		log.Criticalf("project admin %s", err)
		exitwithstatus.Message("project admin %s", err)
	}

	log.Info("initialise authority")
	err = authority.Initialise(operator, admins, projectAdmins)
	if nil != err {
		log.Criticalf("authority initialise error: %s", err)
		exitwithstatus.Message("authority initialise error: %s", err)
	}
	defer authority.Finalise()

	// custody ledger for reservations and withdrawals
	log.Info("initialise custody")
	err = custody.Initialise(storage.Pool.SaleState, nil)
	if nil != err {
		log.Criticalf("custody initialise error: %s", err)
		exitwithstatus.Message("custody initialise error: %s", err)
	}
	defer custody.Finalise()

	log.Info("initialise metadata")
	err = metadata.Initialise(storage.Pool.SaleState, storage.Pool.UnitURIs)
	if nil != err {
		log.Criticalf("metadata initialise error: %s", err)
		exitwithstatus.Message("metadata initialise error: %s", err)
	}
	defer metadata.Finalise()

	log.Info("initialise allocation")
	err = allocation.Initialise(storage.Pool.Allocations)
	if nil != err {
		log.Criticalf("allocation initialise error: %s", err)
		exitwithstatus.Message("allocation initialise error: %s", err)
	}
	defer allocation.Finalise()

	log.Info("initialise supply")
	err = supply.Initialise(storage.Pool.SaleState, theConfiguration.Sale.Cap, theConfiguration.Sale.ReservationCap)
	if nil != err {
		log.Criticalf("supply initialise error: %s", err)
		exitwithstatus.Message("supply initialise error: %s", err)
	}
	defer supply.Finalise()

	// the sale engine is the only writer of the unit ledger
	log.Info("initialise sale")
	handles := sale.Handles{
		Units:     storage.Pool.Units,
		SaleState: storage.Pool.SaleState,
	}
	err = sale.Initialise(handles, theConfiguration.Sale.MaximumPerTransaction, theConfiguration.Sale.InitialPrice, nil)
	if nil != err {
		log.Criticalf("sale initialise error: %s", err)
		exitwithstatus.Message("sale initialise error: %s", err)
	}
	defer sale.Finalise()

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theConfiguration) {
		return
	}

	// initialise encryption
	err = zmqutil.StartAuthentication()
	if nil != err {
		log.Criticalf("zmq.AuthStart: error: %s", err)
		exitwithstatus.Message("zmq.AuthStart: error: %s", err)
	}

	// start up the event broadcasting background processes
	err = publish.Initialise(&theConfiguration.Publishing)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// load the pre-sale allowlist and track the file for updates
	if "" != theConfiguration.AllowlistFile {
		watcher, err := newAllowlistWatcher(theConfiguration.AllowlistFile, logger.New(allowlistLoggerPrefix))
		if nil != err {
			log.Criticalf("allowlist watcher error: %s", err)
			exitwithstatus.Message("allowlist watcher error: %s", err)
		}
		err = watcher.Start()
		if nil != err {
			log.Criticalf("allowlist load error: %s", err)
			exitwithstatus.Message("allowlist load error: %s", err)
		}
	}

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		go memstats()
	}

	// every service is up so issuance requests can be accepted
	mode.Set(mode.Normal)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}

// convert a list of Base58 encoded accounts, checking each against
// the current chain
func parseAccounts(accounts []string) ([]*account.Account, error) {
	result := make([]*account.Account, len(accounts))
	for i, item := range accounts {
		acc, err := account.AccountFromBase58(item)
		if nil != err {
			return nil, fmt.Errorf("account: %q error: %s", item, err)
		}
		if acc.IsTesting() != mode.IsTesting() {
			return nil, fmt.Errorf("account: %q and chain: %q mismatch", item, mode.ChainName())
		}
		result[i] = acc
	}
	return result, nil
}
