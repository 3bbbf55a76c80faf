// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/mintd/account"
	"github.com/bitmark-inc/mintd/rpc/unit"
)

// URIData - data for a metadata location request
type URIData struct {
	UnitId uint64
}

// GetUnitURI - obtain the metadata location of an issued unit
func (client *Client) GetUnitURI(uriConfig *URIData) (*unit.URIReply, error) {

	uriArgs := unit.URIArguments{
		UnitId: uriConfig.UnitId,
	}

	client.printJson("URI Request", uriArgs)

	reply := &unit.URIReply{}
	err := client.client.Call("Unit.URI", uriArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("URI Reply", reply)

	return reply, nil
}

// RecordData - data for a unit record request
type RecordData struct {
	UnitId uint64
}

// GetUnitRecord - obtain the stored issue record of one unit
func (client *Client) GetUnitRecord(recordConfig *RecordData) (*unit.RecordReply, error) {

	recordArgs := unit.RecordArguments{
		UnitId: recordConfig.UnitId,
	}

	client.printJson("Record Request", recordArgs)

	reply := &unit.RecordReply{}
	err := client.client.Call("Unit.Record", recordArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Record Reply", reply)

	return reply, nil
}

// OwnedData - data for an ownership request
type OwnedData struct {
	Owner *account.Account
	Start uint64
	Count int
}

// GetOwned - obtain list of owned units
func (client *Client) GetOwned(ownedConfig *OwnedData) (*unit.OwnedReply, error) {

	ownedArgs := unit.OwnedArguments{
		Owner: ownedConfig.Owner,
		Start: ownedConfig.Start,
		Count: ownedConfig.Count,
	}

	client.printJson("Owned Request", ownedArgs)

	reply := &unit.OwnedReply{}
	err := client.client.Call("Unit.Owned", ownedArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Owned Reply", reply)

	return reply, nil
}
