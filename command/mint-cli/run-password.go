// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runChangePassword(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := identityName(c, m.config)
	if nil != err {
		return err
	}

	oldPassword := c.GlobalString("password")
	if "" == oldPassword {
		oldPassword, err = promptPassword(name)
		if nil != err {
			return err
		}
	}

	newPassword, err := promptNewPassword()
	if nil != err {
		return err
	}

	err = m.config.ChangePassword(name, oldPassword, newPassword)
	if nil != err {
		return err
	}

	m.save = true

	return nil
}
