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

func runURI(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	unitId := c.Uint64("unit")

	if m.verbose {
		fmt.Fprintf(m.e, "unit: %d\n", unitId)
	}

	client, err := rpccalls.NewClient(m.testnet, m.config.Connections[0], m.config.Fingerprint, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	uriConfig := &rpccalls.URIData{
		UnitId: unitId,
	}

	response, err := client.GetUnitURI(uriConfig)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
