// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type identityInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	ReceiveOnly bool   `json:"receive_only"`
}

type infoResult struct {
	DefaultIdentity string         `json:"default_identity"`
	TestNet         bool           `json:"testnet"`
	Connections     []string       `json:"connections"`
	Identities      []identityInfo `json:"identities"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	result := infoResult{
		DefaultIdentity: m.config.DefaultIdentity,
		TestNet:         m.config.TestNet,
		Connections:     m.config.Connections,
		Identities:      make([]identityInfo, 0, len(m.config.Identities)),
	}

	for name, id := range m.config.Identities {
		result.Identities = append(result.Identities, identityInfo{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			ReceiveOnly: "" == id.Data,
		})
	}

	printJson(m.w, result)
	return nil
}
