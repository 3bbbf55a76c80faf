// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/command/mint-cli/configuration"
	"github.com/bitmark-inc/mintd/phase"
)

// identity name is required
func checkName(name string) (string, error) {
	if "" == name {
		return "", fmt.Errorf("identity name is required")
	}
	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", fmt.Errorf("connect is required")
	}
	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", fmt.Errorf("description is required")
	}
	return description, nil
}

// seed is either provided or generated, never both
func checkSeed(seed string, new bool, testnet bool) (string, error) {

	if new && "" != seed {
		return "", fmt.Errorf("either seed or new, not both")
	}
	if new {
		return account.NewBase58EncodedSeedV2(testnet)
	}
	if "" == seed {
		return "", fmt.Errorf("seed is required")
	}
	// verify that the seed is valid for this network
	p, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return "", err
	}
	if p.IsTesting() != testnet {
		return "", fmt.Errorf("seed is for the wrong network")
	}
	return seed, nil
}

// phase name is required and must parse
func checkPhase(name string) (string, error) {
	if "" == name {
		return "", fmt.Errorf("phase is required")
	}
	p, err := phase.FromString(name)
	if nil != err {
		return "", err
	}
	return p.String(), nil
}

// provenance hash is required
func checkHash(hash string) (string, error) {
	if "" == hash {
		return "", fmt.Errorf("hash is required")
	}
	return hash, nil
}

// URI is required
func checkURI(uri string) (string, error) {
	if "" == uri {
		return "", fmt.Errorf("uri is required")
	}
	return uri, nil
}

// an account flag is either an identity name from the
// configuration or a full base58 account string
func checkAccount(name string, config *configuration.Configuration) (*account.Account, error) {
	if "" == name {
		return nil, fmt.Errorf("account is required")
	}
	if acc, err := config.Account(name); nil == err {
		return acc, nil
	}
	return account.AccountFromBase58(name)
}

// check if file exists, return true for a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
