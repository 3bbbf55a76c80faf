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

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	quantity := c.Uint64("quantity")
	if quantity <= 0 {
		return fmt.Errorf("invalid quantity: %d", quantity)
	}

	payment := c.Uint64("payment")

	name, buyer, err := callerAccount(c, m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "buyer: %s\n", name)
		fmt.Fprintf(m.e, "quantity: %d\n", quantity)
		fmt.Fprintf(m.e, "payment: %d\n", payment)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[0], m.config.Fingerprint, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	issueConfig := &rpccalls.IssueData{
		Buyer:   buyer,
		Count:   quantity,
		Payment: payment,
	}

	response, err := client.PublicIssue(issueConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
