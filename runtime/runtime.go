// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
	"github.com/bitmark-inc/staterecord/rent"
	"github.com/bitmark-inc/staterecord/storage"
)

// Processor - a program that can run instructions
type Processor interface {
	Process(accounts []*account.Info, data []byte) error
}

// Ledger - the operations offered to clients
type Ledger interface {
	Execute(*Transaction) (*Receipt, error)
	Account(address.Address) (*account.Account, error)
	Airdrop(address.Address, uint64) (*account.Account, error)
	Receipt(account.Signature) (*Receipt, error)
}

// FaucetConfiguration - test credit settings
type FaucetConfiguration struct {
	Enabled bool   `gluamapper:"enabled" json:"enabled"`
	Maximum uint64 `gluamapper:"maximum" json:"maximum"`
}

// Runtime - executes transactions against the account store
type Runtime struct {
	sync.Mutex
	log      *logger.L
	programs map[address.Address]Processor
	faucet   FaucetConfiguration
}

// New - create a runtime for a set of programs
//
// storage must already be initialised
func New(log *logger.L, programs map[address.Address]Processor, faucet FaucetConfiguration) *Runtime {
	return &Runtime{
		log:      log,
		programs: programs,
		faucet:   faucet,
	}
}

// Execute - verify and run one transaction
//
// an error is returned for a transaction that cannot be attributed to its
// signers, nothing is stored for it; otherwise the receipt is stored and
// returned, and account changes are only stored for a successful receipt
func (r *Runtime) Execute(tx *Transaction) (*Receipt, error) {
	err := tx.Verify()
	if nil != err {
		r.log.Debugf("rejected transaction: %s", err)
		return nil, err
	}

	ix := tx.Instruction
	program, ok := r.programs[ix.ProgramID]
	if !ok {
		return nil, fault.ErrUnknownProgram
	}

	r.Lock()
	defer r.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	id := tx.ID()
	if trx.Has(storage.Pool.Transactions, id) {
		trx.Abort()
		return nil, fault.ErrDuplicateTransaction
	}

	infos, views, err := load(trx, ix.Accounts)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = program.Process(infos, ix.Data)
	if nil == err {
		err = verify(ix.ProgramID, views)
	}

	if nil == err {
		for _, v := range views {
			if v.changed() {
				trx.Put(storage.Pool.Accounts, v.info.Key[:], v.info.Account().Pack())
			}
		}
		r.log.Infof("transaction: %s  program: %s  succeeded", id, ix.ProgramID)
	} else {
		r.log.Infof("transaction: %s  program: %s  failed: %s", id, ix.ProgramID, err)
	}

	receipt := newReceipt(id, err)
	packed, err := receipt.Pack()
	if nil != err {
		trx.Abort()
		return nil, err
	}
	trx.Put(storage.Pool.Transactions, id, packed)

	err = trx.Commit()
	if nil != err {
		r.log.Errorf("commit error: %s", err)
		return nil, err
	}

	return receipt, nil
}

// Account - the committed state of an account
//
// an account never written is an empty system owned account
func (r *Runtime) Account(key address.Address) (*account.Account, error) {
	buffer := storage.Pool.Accounts.Get(key[:])
	if nil == buffer {
		return account.Empty(), nil
	}
	return account.Unpack(buffer)
}

// Receipt - the outcome of a processed transaction
func (r *Runtime) Receipt(signature account.Signature) (*Receipt, error) {
	return GetReceipt(storage.Pool.Transactions, signature)
}

// Airdrop - credit an account from the faucet
func (r *Runtime) Airdrop(key address.Address, lamports uint64) (*account.Account, error) {
	r.Lock()
	defer r.Unlock()

	if !r.faucet.Enabled {
		return nil, fault.ErrFaucetDisabled
	}
	if 0 == lamports || lamports > r.faucet.Maximum {
		return nil, fault.ErrFaucetLimitExceeded
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	a, err := get(trx, key)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	if a.Lamports+lamports < a.Lamports {
		trx.Abort()
		return nil, fault.ErrFaucetLimitExceeded
	}
	a.Lamports += lamports

	trx.Put(storage.Pool.Accounts, key[:], a.Pack())
	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	r.log.Infof("airdrop: %d to: %s", lamports, key)
	return a, nil
}

// SetFaucet - replace the faucet settings of a running ledger
func (r *Runtime) SetFaucet(faucet FaucetConfiguration) {
	r.Lock()
	if r.faucet != faucet {
		r.log.Infof("faucet: enabled: %t  maximum: %d", faucet.Enabled, faucet.Maximum)
	}
	r.faucet = faucet
	r.Unlock()
}

// Genesis - store the rent sysvar and the executable program accounts
//
// accounts that already exist are left unchanged
func (r *Runtime) Genesis(parameters *rent.Rent) error {
	r.Lock()
	defer r.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	if !trx.Has(storage.Pool.Accounts, address.RentSysvar[:]) {
		trx.Put(storage.Pool.Accounts, address.RentSysvar[:], parameters.Account().Pack())
		r.log.Infof("genesis: rent sysvar: %s", address.RentSysvar)
	}

	executables := []address.Address{address.SystemProgram}
	for id := range r.programs {
		executables = append(executables, id)
	}

	for _, id := range executables {
		if trx.Has(storage.Pool.Accounts, id[:]) {
			continue
		}
		a := &account.Account{
			Lamports:   1,
			Owner:      address.SystemProgram,
			Executable: true,
		}
		trx.Put(storage.Pool.Accounts, id[:], a.Pack())
		r.log.Infof("genesis: program: %s", id)
	}

	return trx.Commit()
}

// read an account through the open transaction
func get(trx storage.Transaction, key address.Address) (*account.Account, error) {
	buffer := trx.Get(storage.Pool.Accounts, key[:])
	if nil == buffer {
		return account.Empty(), nil
	}
	return account.Unpack(buffer)
}
