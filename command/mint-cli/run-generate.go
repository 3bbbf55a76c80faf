// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/mintd/account"
)

type generated struct {
	Seed    string `json:"seed"`
	Account string `json:"account"`
}

func runGenerate(c *cli.Context) error {

	// no configuration is read for this command so the
	// network flag selects the key variant directly
	testnet := "live" != c.GlobalString("network")

	seed, err := account.NewBase58EncodedSeedV2(testnet)
	if nil != err {
		return err
	}

	private, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	result := generated{
		Seed:    seed,
		Account: private.Account().String(),
	}

	printJson(c.App.Writer, result)
	return nil
}
