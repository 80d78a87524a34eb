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
)

// accounts: payer(signer), record(writable)
//
// only the owner stored in the record may update it, and the record
// must sit at the address derived from that owner
func (p *Program) update(schema record.Schema, accounts []*account.Info, data []byte) error {
	if 2 != len(accounts) {
		return fault.ErrNotEnoughAccountKeys
	}
	payer := accounts[0]
	state := accounts[1]

	if err := guard.RequireSigner(payer); nil != err {
		return err
	}

	if err := guard.RequireNonEmpty(state); nil != err {
		return err
	}

	if err := guard.RequireProgramOwned(state, p.id); nil != err {
		return err
	}

	unpacked, err := instruction.Packed(data).Unpack()
	if nil != err {
		return err
	}
	payload, ok := unpacked.(*instruction.Update)
	if !ok {
		return fault.ErrUnknownInstruction
	}

	r, err := schema.Unpack(state.Data)
	if nil != err {
		return err
	}

	if !r.Initialised {
		return fault.ErrAccountNotInitialised
	}

	if err := guard.RequireOwnerEquals(r.Owner, payer); nil != err {
		return err
	}

	err = address.VerifyProgramAddress(record.Seeds(schema, r.Owner), r.Bump, p.id, state.Key)
	if nil != err {
		return err
	}

	r.Data = payload.Data
	r.State = record.Updated
	r.UpdateCount += 1 // wraps at 2^64

	packed, err := schema.Pack(r)
	if nil != err {
		return err
	}
	copy(state.Data, packed)

	p.log.Infof("updated V%d record: %s  count: %d", schema.Version(), state.Key, r.UpdateCount)

	return nil
}
