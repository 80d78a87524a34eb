// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
	"github.com/bitmark-inc/staterecord/record"
)

// Unpack - turn instruction data into a payload
//
// the payload after the selector must be exactly the size the selector
// requires, shorter or longer data is a layout error
//
// must cast result to correct type
//
// e.g.
//   switch p := result.(type) {
//   case *instruction.Initialise:
func (packed Packed) Unpack() (Payload, error) {
	if 0 == len(packed) {
		return nil, fault.ErrInstructionDataLength
	}

	selector := Selector(packed[0])
	payload := packed[1:]

	switch selector {

	case InitialiseV1Selector, InitialiseV2Selector:
		if InitialisePayloadSize != len(payload) {
			return nil, fault.ErrInstructionDataLength
		}
		owner, err := address.FromBytes(payload[:address.Size])
		if nil != err {
			return nil, err
		}
		data, err := record.DataFromBytes(payload[address.Size:])
		if nil != err {
			return nil, err
		}
		return &Initialise{
			Version: selector.version(),
			Owner:   owner,
			Data:    data,
		}, nil

	case UpdateV1Selector, UpdateV2Selector:
		if UpdatePayloadSize != len(payload) {
			return nil, fault.ErrInstructionDataLength
		}
		data, err := record.DataFromBytes(payload)
		if nil != err {
			return nil, err
		}
		return &Update{
			Version: selector.version(),
			Data:    data,
		}, nil

	default:
		return nil, fault.ErrUnknownInstruction
	}
}

// the record layout addressed by a selector
func (s Selector) version() record.Version {
	switch s {
	case InitialiseV2Selector, UpdateV2Selector:
		return record.V2
	default:
		return record.V1
	}
}
