// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/staterecord/address"
)

// Meta - how an instruction refers to an account
type Meta struct {
	Key        address.Address `json:"key"`
	IsSigner   bool            `json:"isSigner"`
	IsWritable bool            `json:"isWritable"`
}

// NewMeta - a writable account reference
func NewMeta(key address.Address, isSigner bool) Meta {
	return Meta{Key: key, IsSigner: isSigner, IsWritable: true}
}

// NewReadonlyMeta - a read-only account reference
func NewReadonlyMeta(key address.Address, isSigner bool) Meta {
	return Meta{Key: key, IsSigner: isSigner, IsWritable: false}
}

// Info - the view of an account seen by a program during one instruction
//
// programs mutate Lamports, Owner and Data in place; the host decides
// afterwards whether the changes are kept
type Info struct {
	Key        address.Address
	IsSigner   bool
	IsWritable bool
	Lamports   uint64
	Owner      address.Address
	Executable bool
	Data       []byte
}

// NewInfo - combine an instruction reference with a stored account
func NewInfo(meta Meta, a *Account) *Info {
	data := make([]byte, len(a.Data))
	copy(data, a.Data)
	return &Info{
		Key:        meta.Key,
		IsSigner:   meta.IsSigner,
		IsWritable: meta.IsWritable,
		Lamports:   a.Lamports,
		Owner:      a.Owner,
		Executable: a.Executable,
		Data:       data,
	}
}

// DataIsEmpty - no storage has been allocated
func (info *Info) DataIsEmpty() bool {
	return 0 == len(info.Data)
}

// Account - a detached copy of the current account state
func (info *Info) Account() *Account {
	data := make([]byte, len(info.Data))
	copy(data, info.Data)
	return &Account{
		Lamports:   info.Lamports,
		Owner:      info.Owner,
		Executable: info.Executable,
		Data:       data,
	}
}
