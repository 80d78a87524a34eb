// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/staterecord/fault"
)

// SizeV1 - bytes in a V1 record
//
//   initialised(1) | owner(32) | state(1) | data(32) | update count(8) | bump(1)
const SizeV1 = commonSize

// SchemaV1 - state is a checked enumeration
var SchemaV1 Schema = schemaV1{}

type schemaV1 struct{}

func (schemaV1) Version() Version { return V1 }
func (schemaV1) Size() int        { return SizeV1 }
func (schemaV1) Seed() []byte     { return []byte("mystate_v1") }

// Pack - encode a record, the state must be one of the enumerated values
// and there is no reserved byte in this layout
func (schemaV1) Pack(r *Record) ([]byte, error) {
	if !r.State.IsValid() {
		return nil, fault.ErrInvalidState
	}
	if 0 != r.Reserved {
		return nil, fault.ErrReservedNotInLayout
	}
	buffer := make([]byte, SizeV1)
	packCommon(buffer, r)
	return buffer, nil
}

// Unpack - decode a record, the buffer must be exactly SizeV1
func (schemaV1) Unpack(buffer []byte) (*Record, error) {
	if SizeV1 != len(buffer) {
		return nil, fault.ErrRecordLength
	}
	r, err := unpackCommon(buffer)
	if nil != err {
		return nil, err
	}
	if !r.State.IsValid() {
		return nil, fault.ErrInvalidState
	}
	return r, nil
}
