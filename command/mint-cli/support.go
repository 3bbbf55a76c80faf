// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/command/mint-cli/configuration"
	"github.com/bitmark-inc/mintd/fault"
)

var passwordConsole *terminal.Terminal

func getTerminal() (*terminal.Terminal, int, *terminal.State) {
	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		panic(err)
	}

	if nil != passwordConsole {
		return passwordConsole, 0, oldState
	}

	tmpIO, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if nil != err {
		panic("No console")
	}

	passwordConsole = terminal.NewTerminal(tmpIO, "mint-cli: ")

	return passwordConsole, 0, oldState
}

// prompt for a new password and verify the re-type matches
func promptNewPassword() (string, error) {
	console, fd, state := getTerminal()
	password, err := console.ReadPassword("Set identity password(length >= 8): ")
	if nil != err {
		fmt.Printf("Get password fail: %s\n", err)
		return "", err
	}
	terminal.Restore(fd, state)

	if len(password) < 8 {
		return "", fault.InvalidPasswordLength
	}

	console, fd, state = getTerminal()
	verifyPassword, err := console.ReadPassword("Verify password: ")
	if nil != err {
		fmt.Printf("verify failed: %s\n", err)
		return "", fault.PasswordMismatch
	}
	terminal.Restore(fd, state)

	if password != verifyPassword {
		return "", fault.PasswordMismatch
	}

	return password, nil
}

// prompt for an existing password
func promptPassword(name string) (string, error) {
	console, fd, state := getTerminal()
	password, err := console.ReadPassword("password for \"" + name + "\": ")
	if nil != err {
		fmt.Printf("Get password fail: %s\n", err)
		return "", err
	}
	terminal.Restore(fd, state)

	return password, nil
}

// resolve the global identity flag to a name, falling back to the
// configured default identity
func identityName(c *cli.Context, config *configuration.Configuration) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = config.DefaultIdentity
	}
	return checkName(name)
}

// resolve the calling identity to its account, no password is
// needed as the daemon boundary carries declared callers
func callerAccount(c *cli.Context, config *configuration.Configuration) (string, *account.Account, error) {
	name, err := identityName(c, config)
	if nil != err {
		return "", nil, err
	}
	acc, err := config.Account(name)
	if nil != err {
		return "", nil, err
	}
	return name, acc, nil
}

// decrypt an identity's secret data, prompting for the password
// unless one was supplied on the command line
func privateWithPasswordPrompt(c *cli.Context, config *configuration.Configuration) (string, *configuration.Private, error) {
	name, err := identityName(c, config)
	if nil != err {
		return "", nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword(name)
		if nil != err {
			return "", nil, err
		}
	}

	private, err := config.Private(password, name)
	if nil != err {
		return "", nil, err
	}
	return name, private, nil
}
