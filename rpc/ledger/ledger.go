// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
	"github.com/bitmark-inc/staterecord/rpc/ratelimit"
	"github.com/bitmark-inc/staterecord/runtime"
)

const (
	rateLimitLedger = 200
	rateBurstLedger = 100

	// airdrops are slow and rare
	rateLimitAirdrop = 1
	rateBurstAirdrop = 5
)

// Ledger - type for the RPC
type Ledger struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	AirdropLimiter *rate.Limiter
	Runtime        runtime.Ledger
}

// New - create the ledger service
func New(log *logger.L, r runtime.Ledger) *Ledger {
	return &Ledger{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		AirdropLimiter: rate.NewLimiter(rateLimitAirdrop, rateBurstAirdrop),
		Runtime:        r,
	}
}

// Submit
// ------

// Submit - execute a signed transaction
//
// a transaction that fails verification returns an error and is not
// recorded, otherwise the reply is the stored receipt
func (ledger *Ledger) Submit(arguments *runtime.Transaction, reply *runtime.Receipt) error {

	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Instruction {
		return fault.ErrMissingParameters
	}

	log := ledger.Log
	log.Infof("Ledger.Submit: program: %s  signatures: %d", arguments.Instruction.ProgramID, len(arguments.Signatures))

	receipt, err := ledger.Runtime.Execute(arguments)
	if nil != err {
		return err
	}

	log.Debugf("receipt: %+v", receipt)

	*reply = *receipt
	return nil
}

// Account
// -------

// AccountArguments - arguments for RPC
type AccountArguments struct {
	Key address.Address `json:"key"`
}

// AccountReply - result of account RPC
type AccountReply struct {
	Key        address.Address `json:"key"`
	Lamports   uint64          `json:"lamports,string"`
	Owner      address.Address `json:"owner"`
	Executable bool            `json:"executable"`
	Data       string          `json:"data"` // hex
}

// Account - committed state of an account
func (ledger *Ledger) Account(arguments *AccountArguments, reply *AccountReply) error {

	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	ledger.Log.Infof("Ledger.Account: %s", arguments.Key)

	a, err := ledger.Runtime.Account(arguments.Key)
	if nil != err {
		return err
	}

	fill(reply, arguments.Key, a)
	return nil
}

// Airdrop
// -------

// AirdropArguments - arguments for RPC
type AirdropArguments struct {
	Key      address.Address `json:"key"`
	Lamports uint64          `json:"lamports,string"`
}

// Airdrop - credit an account from the faucet
func (ledger *Ledger) Airdrop(arguments *AirdropArguments, reply *AccountReply) error {

	if err := ratelimit.Limit(ledger.AirdropLimiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	ledger.Log.Infof("Ledger.Airdrop: %d to: %s", arguments.Lamports, arguments.Key)

	a, err := ledger.Runtime.Airdrop(arguments.Key, arguments.Lamports)
	if nil != err {
		return err
	}

	fill(reply, arguments.Key, a)
	return nil
}

// Receipt
// -------

// ReceiptArguments - arguments for RPC
type ReceiptArguments struct {
	Signature account.Signature `json:"signature"`
}

// Receipt - outcome of a processed transaction
func (ledger *Ledger) Receipt(arguments *ReceiptArguments, reply *runtime.Receipt) error {

	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Signature) {
		return fault.ErrMissingParameters
	}

	ledger.Log.Infof("Ledger.Receipt: %s", arguments.Signature)

	receipt, err := ledger.Runtime.Receipt(arguments.Signature)
	if nil != err {
		return err
	}

	*reply = *receipt
	return nil
}

func fill(reply *AccountReply, key address.Address, a *account.Account) {
	reply.Key = key
	reply.Lamports = a.Lamports
	reply.Owner = a.Owner
	reply.Executable = a.Executable
	reply.Data = hex.EncodeToString(a.Data)
}
