// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"golang.org/x/crypto/sha3"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	testnet bool
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a mintd
//
// the daemon uses a self signed certificate so chain verification is
// off, instead the certificate is checked against a pinned SHA3-256
// fingerprint when one is configured
func NewClient(testnet bool, connect string, fingerprint string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	if "" != fingerprint {
		expected, err := hex.DecodeString(fingerprint)
		if nil != err {
			conn.Close()
			return nil, err
		}
		certificates := conn.ConnectionState().PeerCertificates
		if 0 == len(certificates) {
			conn.Close()
			return nil, fmt.Errorf("connection to: %q has no certificate", connect)
		}
		actual := sha3.Sum256(certificates[0].Raw)
		if !bytes.Equal(expected, actual[:]) {
			conn.Close()
			return nil, fmt.Errorf("certificate fingerprint mismatch: actual: %x", actual)
		}
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		testnet: testnet,
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the mintd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}
