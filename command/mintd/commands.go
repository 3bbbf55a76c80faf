// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/ownership"
	"github.com/bitmark-inc/mintd/storage"
	"github.com/bitmark-inc/mintd/zmqutil"
)

const (
	broadcastPublicKeyFilename  = "broadcast.public"
	broadcastPrivateKeyFilename = "broadcast.private"

	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-broadcast-identity", "broadcast":
		publicKeyFilename := getFilenameWithDirectory(arguments, broadcastPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, broadcastPrivateKeyFilename)

		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-account", "acc":
		testnet := false
		if len(arguments) >= 1 {
			switch arguments[0] {
			case "test", "testing", "local":
				testnet = true
			case "live":
				testnet = false
			default:
				fmt.Printf("error: invalid network: %q expected: [live | testing | local]\n", arguments[0])
				exitwithstatus.Exit(1)
			}
		}

		seed, err := account.NewBase58EncodedSeedV2(testnet)
		if nil != err {
			fmt.Printf("generate seed error: %s\n", err)
			exitwithstatus.Exit(1)
		}
		private, err := account.PrivateKeyFromBase58Seed(seed)
		if nil != err {
			fmt.Printf("generate account error: %s\n", err)
			exitwithstatus.Exit(1)
		}

		fmt.Printf("seed:    SEED:%s\n", seed)
		fmt.Printf("account: %s\n", private.Account())

	case "allowlist-check", "alc":
		if len(arguments) < 1 {
			fmt.Printf("error: missing allowlist file argument\n")
			exitwithstatus.Exit(1)
		}

		entries, err := parseAllowlistFile(arguments[0])
		if nil != err {
			fmt.Printf("allowlist: %q error: %s\n", arguments[0], err)
			exitwithstatus.Exit(1)
		}

		for _, entry := range entries {
			fmt.Printf("%s %d\n", entry.account, entry.quota)
		}
		fmt.Printf("total: %d participants\n", len(entries))

	case "start", "run":
		return false // continue processing

	case "ownership-rebuild", "reindex":
		return false // defer processing until database is loaded

	case "config-test", "cfg", "fingerprint", "f":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                          (h)         - display this message\n\n")
		fmt.Printf("  version                       (v)         - display version string\n\n")

		fmt.Printf("  gen-broadcast-identity [DIR]  (broadcast) - create private key in: %q\n", "DIR/"+broadcastPrivateKeyFilename)
		fmt.Printf("                                              and the public key in: %q\n", "DIR/"+broadcastPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR]            (rpc)       - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                              and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]               - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                              and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-account [NETWORK]         (acc)       - create a new seed and account\n")
		fmt.Printf("                                              for: [live | testing | local]\n")
		fmt.Printf("\n")

		fmt.Printf("  allowlist-check FILE          (alc)       - parse an allowlist file and display its entries\n")
		fmt.Printf("\n")

		fmt.Printf("  start                         (run)       - just run the program, same as no arguments\n")
		fmt.Printf("                                              for convenience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                   (cfg)       - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                   (f)         - display the certificate fingerprint for client pinning\n")
		fmt.Printf("\n")

		fmt.Printf("  ownership-rebuild             (reindex)   - rebuild the ownership index from the unit ledger\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "fingerprint", "f":
		keypair, err := tls.X509KeyPair([]byte(options.ClientRPC.Certificate), []byte(options.ClientRPC.PrivateKey))
		if nil != err {
			exitwithstatus.Message("error: cannot decode certificate: error: %s", err)
		}
		fmt.Printf("rpc fingerprint: %x\n", CertificateFingerprint(keypair.Certificate[0]))

	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage pools and the ownership index are enabled so these
// commands can access and/or change the databases
func processDataCommand(log *logger.L, arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "ownership-rebuild", "reindex":
		log.Warn("rebuilding ownership index from the unit ledger")
		err := ownership.Rebuild(storage.Pool.Units)
		if nil != err {
			exitwithstatus.Message("ownership rebuild error: %s", err)
		}
		err = storage.ReindexDone()
		if nil != err {
			exitwithstatus.Message("reindex completion error: %s", err)
		}
		fmt.Printf("ownership index rebuild completed\n")

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
