// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package system

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
)

// MaxAccountDataSize - largest allocation permitted
const MaxAccountDataSize = 10 * 1024 * 1024

// CreateAccount - parameters of an allocation
type CreateAccount struct {
	From     *account.Info   // funding account, must sign
	To       *account.Info   // new account
	Lamports uint64          // moved from From to To
	Space    uint64          // zeroed bytes to allocate
	Owner    address.Address // program the new account is assigned to
}

// Program - the allocation primitive
type Program struct {
	log *logger.L
}

// New - create the allocation primitive
func New(log *logger.L) *Program {
	return &Program{
		log: log,
	}
}

// CreateAccount - fund, allocate and assign a new account
//
// the new account must either sign the transaction itself or be the
// program address produced by one of signerSeeds under the invoking
// program; nothing is modified unless every check passes
func (p *Program) CreateAccount(invoker address.Address, create *CreateAccount, signerSeeds ...[][]byte) error {
	from := create.From
	to := create.To

	if !from.IsSigner {
		p.log.Debugf("create: funding account: %s did not sign", from.Key)
		return fault.ErrMissingRequiredSignature
	}

	if from.Key == to.Key || !to.DataIsEmpty() || address.SystemProgram != to.Owner {
		p.log.Debugf("create: account: %s already in use", to.Key)
		return fault.ErrAccountAlreadyInUse
	}

	if !to.IsSigner && !signedFor(invoker, to.Key, signerSeeds) {
		p.log.Debugf("create: account: %s not signed for by program: %s", to.Key, invoker)
		return fault.ErrMissingRequiredSignature
	}

	if create.Space > MaxAccountDataSize {
		p.log.Debugf("create: space: %d exceeds: %d", create.Space, MaxAccountDataSize)
		return fault.ErrAccountDataTooLarge
	}

	if from.Lamports < create.Lamports {
		p.log.Debugf("create: funding account: %s has: %d needs: %d", from.Key, from.Lamports, create.Lamports)
		return fault.ErrInsufficientFunds
	}

	from.Lamports -= create.Lamports
	to.Lamports += create.Lamports
	to.Data = make([]byte, create.Space)
	to.Owner = create.Owner

	p.log.Infof("created account: %s  space: %d  owner: %s", to.Key, create.Space, create.Owner)

	return nil
}

// true if any seed set derives the key under the invoking program
func signedFor(invoker address.Address, key address.Address, signerSeeds [][][]byte) bool {
	for _, seeds := range signerSeeds {
		derived, err := address.CreateProgramAddress(seeds, invoker)
		if nil == err && derived == key {
			return true
		}
	}
	return false
}
