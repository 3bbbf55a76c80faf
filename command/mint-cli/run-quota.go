// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/mintd/command/mint-cli/rpccalls"
)

func runQuota(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	participant := c.String("participant")
	if "" == participant {
		participant = c.GlobalString("identity")
		if "" == participant {
			participant = m.config.DefaultIdentity
		}
	}

	acc, err := checkAccount(participant, m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "participant: %s\n", acc)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[0], m.config.Fingerprint, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	allocationConfig := &rpccalls.AllocationQueryData{
		Participant: acc,
	}

	response, err := client.GetAllocation(allocationConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
