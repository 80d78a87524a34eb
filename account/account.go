// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/binary"

	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
)

// Account - the stored state of one ledger account
type Account struct {
	Lamports   uint64          `json:"lamports,string"`
	Owner      address.Address `json:"owner"`
	Executable bool            `json:"executable"`
	Data       []byte          `json:"data"`
}

// byte offsets of the packed form
const (
	lamportsOffset   = 0
	ownerOffset      = lamportsOffset + 8
	executableOffset = ownerOffset + address.Size
	dataOffset       = executableOffset + 1
)

// Empty - an account that has never been funded or allocated
func Empty() *Account {
	return &Account{
		Owner: address.SystemProgram,
	}
}

// IsEmpty - no balance and no data
func (a *Account) IsEmpty() bool {
	return 0 == a.Lamports && 0 == len(a.Data) && address.SystemProgram == a.Owner && !a.Executable
}

// Pack - the storage form of an account
//
//   lamports(8, little endian) | owner(32) | executable(1) | data
func (a *Account) Pack() []byte {
	buffer := make([]byte, dataOffset+len(a.Data))
	binary.LittleEndian.PutUint64(buffer[lamportsOffset:ownerOffset], a.Lamports)
	copy(buffer[ownerOffset:executableOffset], a.Owner[:])
	if a.Executable {
		buffer[executableOffset] = 1
	}
	copy(buffer[dataOffset:], a.Data)
	return buffer
}

// Unpack - decode the storage form of an account
func Unpack(buffer []byte) (*Account, error) {
	if len(buffer) < dataOffset {
		return nil, fault.ErrAccountRecordTooShort
	}

	a := &Account{
		Lamports:   binary.LittleEndian.Uint64(buffer[lamportsOffset:ownerOffset]),
		Executable: 0 != buffer[executableOffset],
		Data:       make([]byte, len(buffer)-dataOffset),
	}
	copy(a.Owner[:], buffer[ownerOffset:executableOffset])
	copy(a.Data, buffer[dataOffset:])

	return a, nil
}
