// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/instruction"
	"github.com/bitmark-inc/staterecord/rpc/ledger"
	"github.com/bitmark-inc/staterecord/runtime"
)

// Submit - sign an instruction with a fresh nonce and send it
func (client *Client) Submit(ix *instruction.Instruction, signers ...*account.KeyPair) (*runtime.Receipt, error) {

	nonce, err := makeNonce()
	if nil != err {
		return nil, err
	}

	tx := runtime.NewTransaction(ix, nonce)
	err = tx.Sign(signers...)
	if nil != err {
		return nil, err
	}

	client.printJson("Submit Request", tx)

	reply := &runtime.Receipt{}
	err = client.client.Call("Ledger.Submit", tx, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Submit Reply", reply)

	return reply, nil
}

// GetAccount - the committed state of an account
func (client *Client) GetAccount(key address.Address) (*ledger.AccountReply, error) {

	args := ledger.AccountArguments{
		Key: key,
	}

	client.printJson("Account Request", args)

	reply := &ledger.AccountReply{}
	err := client.client.Call("Ledger.Account", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Account Reply", reply)

	return reply, nil
}

// Airdrop - credit an account from the faucet of a test chain
func (client *Client) Airdrop(key address.Address, lamports uint64) (*ledger.AccountReply, error) {

	args := ledger.AirdropArguments{
		Key:      key,
		Lamports: lamports,
	}

	client.printJson("Airdrop Request", args)

	reply := &ledger.AccountReply{}
	err := client.client.Call("Ledger.Airdrop", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Airdrop Reply", reply)

	return reply, nil
}

// GetReceipt - the stored outcome of a submitted transaction
func (client *Client) GetReceipt(signature account.Signature) (*runtime.Receipt, error) {

	args := ledger.ReceiptArguments{
		Signature: signature,
	}

	client.printJson("Receipt Request", args)

	reply := &runtime.Receipt{}
	err := client.client.Call("Ledger.Receipt", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Receipt Reply", reply)

	return reply, nil
}

// random so resubmitting an identical instruction is a new transaction
func makeNonce() (uint64, error) {
	var buffer [8]byte
	_, err := rand.Read(buffer[:])
	if nil != err {
		return 0, err
	}
	return binary.BigEndian.Uint64(buffer[:]), nil
}
