// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/hex"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/record"
)

// Selector - first byte of the instruction data
type Selector uint8

// enumerate the instructions
// the selector is followed by a fixed size payload
const (
	InitialiseV1Selector = Selector(iota) // owner(32) + data(32)
	InitialiseV2Selector = Selector(iota) // owner(32) + data(32)
	UpdateV1Selector     = Selector(iota) // data(32)
	UpdateV2Selector     = Selector(iota) // data(32)

	// this item must be last
	InvalidSelector = Selector(iota)
)

// payload sizes, excluding the selector byte
const (
	InitialisePayloadSize = address.Size + record.DataSize
	UpdatePayloadSize     = record.DataSize
)

// Packed - instruction data is just a byte slice
type Packed []byte

// MarshalText - hex form of instruction data
func (packed Packed) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(packed)))
	hex.Encode(buffer, packed)
	return buffer, nil
}

// UnmarshalText - instruction data from its hex form
func (packed *Packed) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*packed = buffer[:n]
	return nil
}

// Payload - generic decoded instruction
type Payload interface {
	Selector() Selector
	Pack() Packed
}

// Initialise - create the record of an owner
type Initialise struct {
	Version record.Version  `json:"version"`
	Owner   address.Address `json:"owner"` // base58
	Data    record.Data     `json:"data"`  // hex
}

// Update - overwrite the payload of an existing record
type Update struct {
	Version record.Version `json:"version"`
	Data    record.Data    `json:"data"` // hex
}

// Instruction - a payload addressed to a program with the accounts it uses
type Instruction struct {
	ProgramID address.Address `json:"programId"`
	Accounts  []account.Meta  `json:"accounts"`
	Data      Packed          `json:"data"`
}

// String - name of a selector
func (s Selector) String() string {
	switch s {
	case InitialiseV1Selector:
		return "InitialiseV1"
	case InitialiseV2Selector:
		return "InitialiseV2"
	case UpdateV1Selector:
		return "UpdateV1"
	case UpdateV2Selector:
		return "UpdateV2"
	default:
		return "*Unknown*"
	}
}

// Selector - the selector for this initialise
func (initialise *Initialise) Selector() Selector {
	if record.V2 == initialise.Version {
		return InitialiseV2Selector
	}
	return InitialiseV1Selector
}

// Selector - the selector for this update
func (update *Update) Selector() Selector {
	if record.V2 == update.Version {
		return UpdateV2Selector
	}
	return UpdateV1Selector
}

// NewInitialise - the complete initialise instruction for an owner
//
// the owner pays for the record, so it is also the payer account
func NewInitialise(programID address.Address, version record.Version, owner address.Address, data record.Data) (*Instruction, error) {
	schema, err := record.ForVersion(version)
	if nil != err {
		return nil, err
	}

	recordAddress, _, err := address.FindProgramAddress(record.Seeds(schema, owner), programID)
	if nil != err {
		return nil, err
	}

	payload := &Initialise{
		Version: version,
		Owner:   owner,
		Data:    data,
	}

	return &Instruction{
		ProgramID: programID,
		Accounts: []account.Meta{
			account.NewMeta(owner, true),
			account.NewMeta(recordAddress, false),
			account.NewReadonlyMeta(address.RentSysvar, false),
			account.NewReadonlyMeta(address.SystemProgram, false),
		},
		Data: payload.Pack(),
	}, nil
}

// NewUpdate - the complete update instruction for the record of an owner
func NewUpdate(programID address.Address, version record.Version, owner address.Address, data record.Data) (*Instruction, error) {
	schema, err := record.ForVersion(version)
	if nil != err {
		return nil, err
	}

	recordAddress, _, err := address.FindProgramAddress(record.Seeds(schema, owner), programID)
	if nil != err {
		return nil, err
	}

	payload := &Update{
		Version: version,
		Data:    data,
	}

	return &Instruction{
		ProgramID: programID,
		Accounts: []account.Meta{
			account.NewMeta(owner, true),
			account.NewMeta(recordAddress, false),
		},
		Data: payload.Pack(),
	}, nil
}
