// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"bytes"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
	"github.com/bitmark-inc/staterecord/storage"
)

// one distinct account of an instruction with its state before execution
type view struct {
	before *account.Account
	info   *account.Info
}

// load the accounts of an instruction
//
// an account listed more than once is a single shared view, it is a
// signer or writable if any reference says so
func load(trx storage.Transaction, metas []account.Meta) ([]*account.Info, []*view, error) {
	infos := make([]*account.Info, len(metas))
	views := make([]*view, 0, len(metas))
	byKey := make(map[address.Address]*view)

	for i, meta := range metas {
		if v, ok := byKey[meta.Key]; ok {
			v.info.IsSigner = v.info.IsSigner || meta.IsSigner
			v.info.IsWritable = v.info.IsWritable || meta.IsWritable
			infos[i] = v.info
			continue
		}

		a, err := get(trx, meta.Key)
		if nil != err {
			return nil, nil, err
		}
		v := &view{
			before: a,
			info:   account.NewInfo(meta, a),
		}
		byKey[meta.Key] = v
		views = append(views, v)
		infos[i] = v.info
	}
	return infos, views, nil
}

func (v *view) changed() bool {
	after := v.info
	return v.before.Lamports != after.Lamports ||
		v.before.Owner != after.Owner ||
		v.before.Executable != after.Executable ||
		!bytes.Equal(v.before.Data, after.Data)
}

// check that the program only changed what it may change
func verify(programID address.Address, views []*view) error {
	var totalBefore, totalAfter uint64

	for _, v := range views {
		before := v.before
		after := v.info

		totalBefore += before.Lamports
		totalAfter += after.Lamports

		if !v.changed() {
			continue
		}

		if !after.IsWritable {
			return fault.ErrReadonlyDataModified
		}

		if before.Executable != after.Executable {
			return fault.ErrExternalAccountDataModified
		}

		// a fresh system account may be handed to the program
		fresh := address.SystemProgram == before.Owner && 0 == len(before.Data)
		owned := programID == before.Owner

		if before.Owner != after.Owner && !(fresh && programID == after.Owner) {
			return fault.ErrExternalAccountDataModified
		}

		if !bytes.Equal(before.Data, after.Data) && !owned && !(fresh && programID == after.Owner) {
			return fault.ErrExternalAccountDataModified
		}

		if after.Lamports < before.Lamports && !owned && !after.IsSigner {
			return fault.ErrExternalLamportSpend
		}
	}

	if totalBefore != totalAfter {
		return fault.ErrLamportsNotConserved
	}
	return nil
}
