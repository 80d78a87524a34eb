// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"

	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
)

// DataSize - bytes in the opaque payload
const DataSize = 32

// State - lifecycle marker of a record
type State uint8

// all possible states
const (
	Uninitialised State = iota
	Initialised
	Updated
	maximumState
)

// String - name of a state
func (s State) String() string {
	switch s {
	case Uninitialised:
		return "Uninitialised"
	case Initialised:
		return "Initialised"
	case Updated:
		return "Updated"
	default:
		return "*Unknown*"
	}
}

// IsValid - true for the enumerated states
func (s State) IsValid() bool {
	return s < maximumState
}

// Version - physical layout of a stored record
type Version uint8

// the supported layouts
const (
	V1 Version = 1
	V2 Version = 2
)

// Record - the unpacked record
//
// Reserved is only stored by V2 and must round trip unchanged
type Record struct {
	Initialised bool            `json:"initialised"`
	Owner       address.Address `json:"owner"`
	State       State           `json:"state"`
	Data        Data            `json:"data"`
	UpdateCount uint64          `json:"updateCount,string"`
	Bump        uint8           `json:"bump"`
	Reserved    uint8           `json:"reserved"`
}

// Data - the opaque payload, hex in JSON
type Data [DataSize]byte

// DataFromBytes - convert a byte slice to a payload
func DataFromBytes(buffer []byte) (Data, error) {
	d := Data{}
	if DataSize != len(buffer) {
		return d, fault.ErrInstructionDataLength
	}
	copy(d[:], buffer)
	return d, nil
}

// MarshalText - hex form of the payload
func (d Data) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DataSize))
	hex.Encode(buffer, d[:])
	return buffer, nil
}

// UnmarshalText - payload from its hex form
func (d *Data) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	decoded, err := DataFromBytes(buffer[:n])
	if nil != err {
		return err
	}
	*d = decoded
	return nil
}

// Schema - one fixed size layout of a record
type Schema interface {
	Version() Version
	Size() int
	Seed() []byte
	Pack(r *Record) ([]byte, error)
	Unpack(buffer []byte) (*Record, error)
}

// ForVersion - get the schema for a layout version
func ForVersion(version Version) (Schema, error) {
	switch version {
	case V1:
		return SchemaV1, nil
	case V2:
		return SchemaV2, nil
	default:
		return nil, fault.ErrUnknownSchema
	}
}

// Seeds - derivation seeds binding a record to its owner
func Seeds(schema Schema, owner address.Address) [][]byte {
	return [][]byte{schema.Seed(), owner[:]}
}
