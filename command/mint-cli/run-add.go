// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if err != nil {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// a receive-only identity stores just the account string
	if acc := c.String("account"); "" != acc {
		if "" != c.String("seed") || c.Bool("new") {
			return fmt.Errorf("account excludes seed/new")
		}
		err = m.config.AddReceiveOnlyIdentity(name, description, acc)
		if err != nil {
			return err
		}
		m.save = true
		return nil
	}

	seed, err := checkSeed(c.String("seed"), c.Bool("new"), m.testnet)
	if err != nil {
		return err
	}

	password := c.GlobalString("password")
	if password == "" {
		password, err = promptNewPassword()
		if err != nil {
			return err
		}
	}

	err = m.config.AddIdentity(name, description, seed, password)
	if err != nil {
		return err
	}

	m.save = true

	return nil
}
