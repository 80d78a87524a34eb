// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
	"github.com/bitmark-inc/staterecord/guard"
	"github.com/bitmark-inc/staterecord/instruction"
	"github.com/bitmark-inc/staterecord/record"
	"github.com/bitmark-inc/staterecord/rent"
	"github.com/bitmark-inc/staterecord/system"
)

// accounts: payer(signer, writable), record(writable), rent sysvar, system program
func (p *Program) initialise(schema record.Schema, accounts []*account.Info, data []byte) error {
	if 4 != len(accounts) {
		return fault.ErrNotEnoughAccountKeys
	}
	payer := accounts[0]
	state := accounts[1]
	rentSysvar := accounts[2]

	if err := guard.RequireKey(accounts[3], address.SystemProgram); nil != err {
		return err
	}

	if err := guard.RequireSigner(payer); nil != err {
		return err
	}

	if err := guard.RequireEmpty(state); nil != err {
		return err
	}

	r, err := rent.FromAccount(rentSysvar)
	if nil != err {
		return err
	}

	unpacked, err := instruction.Packed(data).Unpack()
	if nil != err {
		return err
	}
	payload, ok := unpacked.(*instruction.Initialise)
	if !ok {
		return fault.ErrUnknownInstruction
	}

	if err := guard.RequireOwnerEquals(payload.Owner, payer); nil != err {
		return err
	}

	seeds := record.Seeds(schema, payload.Owner)

	// the bump is always derived here, never taken from the caller
	derived, bump, err := address.FindProgramAddress(seeds, p.id)
	if nil != err {
		return err
	}
	if err := guard.RequireAddressMatch(state, derived); nil != err {
		return err
	}

	create := &system.CreateAccount{
		From:     payer,
		To:       state,
		Lamports: r.MinimumBalance(schema.Size()),
		Space:    uint64(schema.Size()),
		Owner:    p.id,
	}
	err = p.allocator.CreateAccount(p.id, create, address.SignerSeeds(seeds, bump))
	if nil != err {
		return err
	}

	initial := &record.Record{
		Initialised: true,
		Owner:       payload.Owner,
		State:       record.Initialised,
		Data:        payload.Data,
		UpdateCount: 0,
		Bump:        bump,
	}
	packed, err := schema.Pack(initial)
	if nil != err {
		return err
	}
	if len(packed) != len(state.Data) {
		return fault.ErrRecordLength
	}
	copy(state.Data, packed)

	p.log.Infof("initialised V%d record: %s  owner: %s  bump: %d", schema.Version(), state.Key, payload.Owner, bump)

	return nil
}
