// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/command/mint-cli/rpccalls"
)

func runAllocate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	quota := c.Uint64("quota")

	if 0 == c.NArg() {
		return fmt.Errorf("at least one participant is required")
	}

	participants := make([]*account.Account, 0, c.NArg())
	for _, arg := range c.Args() {
		acc, err := checkAccount(arg, m.config)
		if nil != err {
			return err
		}
		participants = append(participants, acc)
	}

	name, admin, err := callerAccount(c, m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "admin: %s\n", name)
		fmt.Fprintf(m.e, "quota: %d\n", quota)
		for _, p := range participants {
			fmt.Fprintf(m.e, "participant: %s\n", p)
		}
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[0], m.config.Fingerprint, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	allocationConfig := &rpccalls.AllocationData{
		Admin:        admin,
		Participants: participants,
		Quota:        quota,
	}

	response, err := client.SetAllocation(allocationConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
