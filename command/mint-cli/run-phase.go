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

func runPhase(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	newPhase, err := checkPhase(c.String("phase"))
	if nil != err {
		return err
	}

	name, admin, err := callerAccount(c, m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "admin: %s\n", name)
		fmt.Fprintf(m.e, "phase: %s\n", newPhase)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[0], m.config.Fingerprint, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	phaseConfig := &rpccalls.PhaseData{
		Admin: admin,
		Phase: newPhase,
	}

	response, err := client.SetPhase(phaseConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
