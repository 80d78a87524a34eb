// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
	"github.com/bitmark-inc/staterecord/instruction"
	"github.com/bitmark-inc/staterecord/record"
	"github.com/bitmark-inc/staterecord/system"
)

// Allocator - the storage allocation primitive
type Allocator interface {
	CreateAccount(invoker address.Address, create *system.CreateAccount, signerSeeds ...[][]byte) error
}

// Config - program parameters
type Config struct {
	ProgramID address.Address
}

// Program - the record program
type Program struct {
	log       *logger.L
	id        address.Address
	allocator Allocator
}

// New - create the record program
func New(log *logger.L, config Config, allocator Allocator) *Program {
	return &Program{
		log:       log,
		id:        config.ProgramID,
		allocator: allocator,
	}
}

// ID - the program id accounts are assigned to
func (p *Program) ID() address.Address {
	return p.id
}

// Process - run one instruction
//
// the first failing check is returned; on error the accounts may have
// been partly modified and the caller must discard them
func (p *Program) Process(accounts []*account.Info, data []byte) error {
	if 0 == len(data) {
		p.log.Debug("rejected: empty instruction data")
		return fault.ErrInstructionDataLength
	}

	selector := instruction.Selector(data[0])

	var err error
	switch selector {
	case instruction.InitialiseV1Selector:
		err = p.initialise(record.SchemaV1, accounts, data)
	case instruction.InitialiseV2Selector:
		err = p.initialise(record.SchemaV2, accounts, data)
	case instruction.UpdateV1Selector:
		err = p.update(record.SchemaV1, accounts, data)
	case instruction.UpdateV2Selector:
		err = p.update(record.SchemaV2, accounts, data)
	default:
		err = fault.ErrUnknownInstruction
	}

	if nil != err {
		p.log.Debugf("rejected: %s: %s", selector, err)
	}
	return err
}
