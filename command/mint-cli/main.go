// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/mintd/command/mint-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "mint-cli"
	app.Usage = "connect to a mintd sale node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " connect to mint `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "Initialise mint-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*mintd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "fingerprint, f",
					Value: "",
					Usage: " mintd certificate SHA3-256 `FINGERPRINT` to pin",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing base58 `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, n",
					Usage: " generate a new seed",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file, set it as default",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing base58 `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, n",
					Usage: " generate a new seed",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive-only base58 `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "generate",
			Usage:  "generate a seed and account, will not store in config file",
			Action: runGenerate,
		},
		{
			Name:      "seed",
			Usage:     "decrypt and display an identity's seed",
			ArgsUsage: "\n   (* = required)",
			Action:    runSeed,
		},
		{
			Name:      "phase",
			Usage:     "move the sale to another phase",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "phase, s",
					Value: "",
					Usage: "*new sale `PHASE` [paused|presale|public]",
				},
			},
			Action: runPhase,
		},
		{
			Name:      "price",
			Usage:     "set the per unit sale price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*price in base units `AMOUNT`",
				},
			},
			Action: runPrice,
		},
		{
			Name:      "allocate",
			Usage:     "grant a pre-sale quota to participants",
			ArgsUsage: "PARTICIPANT... \n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "quota, q",
					Value: 0,
					Usage: "*per participant quota `COUNT`",
				},
			},
			Action: runAllocate,
		},
		{
			Name:      "quota",
			Usage:     "show the remaining pre-sale quota of a participant",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "participant, o",
					Value: "",
					Usage: " participant identity name or account `ACCOUNT`",
				},
			},
			Action: runQuota,
		},
		{
			Name:      "provenance",
			Usage:     "record the provenance hash, write once",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, x",
					Value: "",
					Usage: "*provenance `HASH`",
				},
			},
			Action: runProvenance,
		},
		{
			Name:      "baseuri",
			Usage:     "set the metadata base URI",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "*metadata base `URI`",
				},
			},
			Action: runBaseURI,
		},
		{
			Name:      "uniturri",
			Usage:     "override the metadata URI of one unit",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "unit, t",
					Value: 0,
					Usage: "*unit `ID`",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: "*metadata `URI`",
				},
			},
			Action: runUnitURI,
		},
		{
			Name:      "reserve",
			Usage:     "issue units from the reserved tranche",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or account to receive the units `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "quantity, q",
					Value: 1,
					Usage: " quantity to issue `COUNT`",
				},
			},
			Action: runReserve,
		},
		{
			Name:      "presale",
			Usage:     "buy units against a pre-sale allocation",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "quantity, q",
					Value: 1,
					Usage: " quantity to buy `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "payment, a",
					Value: 0,
					Usage: "*payment in base units `AMOUNT`",
				},
			},
			Action: runPreSale,
		},
		{
			Name:      "buy",
			Usage:     "buy units in the public sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "quantity, q",
					Value: 1,
					Usage: " quantity to buy `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "payment, a",
					Value: 0,
					Usage: "*payment in base units `AMOUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "withdraw",
			Usage:     "move collected payments out of custody",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or account to receive the funds `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount in base units `AMOUNT`",
				},
			},
			Action: runWithdraw,
		},
		{
			Name:      "owned",
			Usage:     "list units owned",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account `ACCOUNT` default is global identity",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "uri",
			Usage:     "show the metadata URI of a unit",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "unit, t",
					Value: 0,
					Usage: "*unit `ID`",
				},
			},
			Action: runURI,
		},
		{
			Name:      "record",
			Usage:     "show the stored issue record of a unit",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "unit, t",
					Value: 0,
					Usage: "*unit `ID`",
				},
			},
			Action: runRecord,
		},
		{
			Name:   "saleinfo",
			Usage:  "display sale phase, price and supply counters",
			Action: runSaleInfo,
		},
		{
			Name:   "nodeinfo",
			Usage:  "display mintd status",
			Action: runNodeInfo,
		},
		{
			Name:   "info",
			Usage:  "display mint-cli status",
			Action: runInfo,
		},
		{
			Name:   "password",
			Usage:  "change default identity's password",
			Action: runChangePassword,
		},
		{
			Name:  "version",
			Usage: "display mint-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "generate" == command {
			return nil
		}

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "live", "mint":
			network = "live"
		case "testing", "test":
			network = "testing"
		case "local", "regression":
			network = "local"
		default:
			return fmt.Errorf("network: %q can only be live/testing/local", network)
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: network != "live",
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			configData, err := configuration.Load(file)
			if nil != err {
				return err
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				config:  configData,
				testnet: configData.TestNet,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
