// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/mintd/account"
	salerpc "github.com/bitmark-inc/mintd/rpc/sale"
	"github.com/bitmark-inc/mintd/sale"
)

// IssueData - data for an issue request
type IssueData struct {
	Buyer   *account.Account
	Count   uint64
	Payment uint64
}

// PreSaleIssue - buy units against a pre-sale allocation
func (client *Client) PreSaleIssue(issueConfig *IssueData) (*salerpc.IssueReply, error) {

	issueArgs := salerpc.IssueArguments{
		Buyer:   issueConfig.Buyer,
		Count:   issueConfig.Count,
		Payment: issueConfig.Payment,
	}

	client.printJson("PreSale Request", issueArgs)

	reply := &salerpc.IssueReply{}
	err := client.client.Call("Sale.PreSaleIssue", issueArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("PreSale Reply", reply)

	return reply, nil
}

// PublicIssue - buy units in the open sale
func (client *Client) PublicIssue(issueConfig *IssueData) (*salerpc.IssueReply, error) {

	issueArgs := salerpc.IssueArguments{
		Buyer:   issueConfig.Buyer,
		Count:   issueConfig.Count,
		Payment: issueConfig.Payment,
	}

	client.printJson("Issue Request", issueArgs)

	reply := &salerpc.IssueReply{}
	err := client.client.Call("Sale.PublicIssue", issueArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Issue Reply", reply)

	return reply, nil
}

// GetSaleInfo - request phase, price and supply counters
func (client *Client) GetSaleInfo() (*sale.Info, error) {

	reply := &sale.Info{}
	err := client.client.Call("Sale.Info", salerpc.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Sale Info Reply", reply)

	return reply, nil
}

// AllocationQueryData - data for an allocation query
type AllocationQueryData struct {
	Participant *account.Account
}

// GetAllocation - remaining pre-sale quota of a participant
func (client *Client) GetAllocation(allocationConfig *AllocationQueryData) (*salerpc.AllocationReply, error) {

	allocationArgs := salerpc.AllocationArguments{
		Participant: allocationConfig.Participant,
	}

	client.printJson("Allocation Request", allocationArgs)

	reply := &salerpc.AllocationReply{}
	err := client.client.Call("Sale.Allocation", allocationArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Allocation Reply", reply)

	return reply, nil
}
