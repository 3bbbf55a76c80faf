// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/mintd/fault"
)

// Connection - type to hold an IP and Port
type Connection struct {
	ip   net.IP
	port uint16
}

// NewConnection - convert a host:port string to a connection
func NewConnection(hostPort string) (*Connection, error) {
	host, port, err := net.SplitHostPort(hostPort)
	if nil != err {
		return nil, fault.InvalidIpAddress
	}

	IP := net.ParseIP(strings.Trim(host, " "))
	if nil == IP {
		ips, err := net.LookupIP(host)
		if nil != err {
			return nil, fault.InvalidIpAddress
		}
		if len(ips) < 1 {
			return nil, fault.InvalidIpAddress
		}
		IP = ips[0]
	}

	numericPort, err := strconv.Atoi(strings.Trim(port, " "))
	if nil != err {
		return nil, fault.InvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}
	c := &Connection{
		ip:   IP,
		port: uint16(numericPort),
	}
	return c, nil
}

// NewConnections - convert an array of host:port strings to connections
func NewConnections(hostPorts []string) ([]*Connection, error) {
	if 0 == len(hostPorts) {
		return nil, fault.InvalidCount
	}
	c := make([]*Connection, len(hostPorts))
	for i, hostPort := range hostPorts {
		err := error(nil)
		c[i], err = NewConnection(hostPort)
		if nil != err {
			return nil, err
		}
	}
	return c, nil
}

// ConnectionFromIPandPort - convert an IP and a port to a connection
func ConnectionFromIPandPort(ip net.IP, port uint16) *Connection {
	return &Connection{
		ip:   ip,
		port: port,
	}
}

// CanonicalIPandPort - make the IP:Port into canonical string
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
//
// prefix is optional and can be empty ("")
// returns prefixed string and IPv6 flag
func (conn *Connection) CanonicalIPandPort(prefix string) (string, bool) {

	port := strconv.Itoa(int(conn.port))
	if nil != conn.ip.To4() {
		return prefix + conn.ip.String() + ":" + port, false
	}
	return prefix + "[" + conn.ip.String() + "]:" + port, true
}

// String - return the canonical string
//
// Note: this may cause problems if registered as a debug callback
// since a nil value will cause a runtime panic; this is intentional
// as the nil should have been checked earlier
func (conn Connection) String() string {
	s, _ := conn.CanonicalIPandPort("")
	return s
}

// MarshalText - convert to text for JSON
func (conn Connection) MarshalText() ([]byte, error) {
	s, _ := conn.CanonicalIPandPort("")
	return []byte(s), nil
}

// CanonicalIPandPort - make the IP:Port canonical
//
// for host:port strings instead of connections
func CanonicalIPandPort(prefix string, hostPort string) (string, error) {
	c, err := NewConnection(hostPort)
	if nil != err {
		return "", err
	}
	s, _ := c.CanonicalIPandPort(prefix)
	return s, nil
}
