// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/instruction"
	"github.com/bitmark-inc/staterecord/record"
	"github.com/bitmark-inc/staterecord/runtime"

	rpcrecord "github.com/bitmark-inc/staterecord/rpc/record"
)

// Initialise - create the record of the owner, paid by the owner
func (client *Client) Initialise(owner *account.KeyPair, version record.Version, data record.Data) (*runtime.Receipt, error) {

	ix, err := instruction.NewInitialise(client.programID, version, owner.Address(), data)
	if nil != err {
		return nil, err
	}

	return client.Submit(ix, owner)
}

// Update - overwrite the payload of the owner's record
func (client *Client) Update(owner *account.KeyPair, version record.Version, data record.Data) (*runtime.Receipt, error) {

	ix, err := instruction.NewUpdate(client.programID, version, owner.Address(), data)
	if nil != err {
		return nil, err
	}

	return client.Submit(ix, owner)
}

// Derive - the record address of an owner as the node computes it
func (client *Client) Derive(owner address.Address, version record.Version) (*rpcrecord.DeriveReply, error) {

	args := rpcrecord.DeriveArguments{
		Owner:   owner,
		Version: version,
	}

	client.printJson("Derive Request", args)

	reply := &rpcrecord.DeriveReply{}
	err := client.client.Call("Record.Derive", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Derive Reply", reply)

	return reply, nil
}

// GetRecord - the decoded record of an owner
func (client *Client) GetRecord(owner address.Address, version record.Version) (*rpcrecord.GetReply, error) {

	args := rpcrecord.GetArguments{
		Owner:   owner,
		Version: version,
	}

	client.printJson("Record Request", args)

	reply := &rpcrecord.GetReply{}
	err := client.client.Call("Record.Get", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Record Reply", reply)

	return reply, nil
}
