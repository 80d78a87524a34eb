// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
)

// byte offsets common to both layouts
const (
	initialisedOffset = 0
	ownerOffset       = initialisedOffset + 1
	stateOffset       = ownerOffset + address.Size
	dataOffset        = stateOffset + 1
	updateCountOffset = dataOffset + DataSize
	bumpOffset        = updateCountOffset + 8
	commonSize        = bumpOffset + 1
)

// write the fields shared by all layouts
func packCommon(buffer []byte, r *Record) {
	if r.Initialised {
		buffer[initialisedOffset] = 1
	} else {
		buffer[initialisedOffset] = 0
	}
	copy(buffer[ownerOffset:stateOffset], r.Owner[:])
	buffer[stateOffset] = byte(r.State)
	copy(buffer[dataOffset:updateCountOffset], r.Data[:])
	binary.LittleEndian.PutUint64(buffer[updateCountOffset:bumpOffset], r.UpdateCount)
	buffer[bumpOffset] = r.Bump
}

// read the fields shared by all layouts
//
// caller has already checked the buffer length
func unpackCommon(buffer []byte) (*Record, error) {
	r := &Record{}

	switch buffer[initialisedOffset] {
	case 0:
		r.Initialised = false
	case 1:
		r.Initialised = true
	default:
		return nil, fault.ErrInvalidInitialisedFlag
	}

	copy(r.Owner[:], buffer[ownerOffset:stateOffset])
	r.State = State(buffer[stateOffset])
	copy(r.Data[:], buffer[dataOffset:updateCountOffset])
	r.UpdateCount = binary.LittleEndian.Uint64(buffer[updateCountOffset:bumpOffset])
	r.Bump = buffer[bumpOffset]

	return r, nil
}
