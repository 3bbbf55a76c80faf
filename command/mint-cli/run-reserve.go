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

func runReserve(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	recipient, err := checkAccount(c.String("receiver"), m.config)
	if nil != err {
		return err
	}

	quantity := c.Uint64("quantity")
	if quantity <= 0 {
		return fmt.Errorf("invalid quantity: %d", quantity)
	}

	name, admin, err := callerAccount(c, m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "admin: %s\n", name)
		fmt.Fprintf(m.e, "recipient: %s\n", recipient)
		fmt.Fprintf(m.e, "quantity: %d\n", quantity)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[0], m.config.Fingerprint, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reserveConfig := &rpccalls.ReserveData{
		Admin:     admin,
		Recipient: recipient,
		Count:     quantity,
	}

	response, err := client.Reserve(reserveConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
