// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/staterecord/fault"
)

// SizeV2 - bytes in a V2 record
//
//   initialised(1) | owner(32) | state(1) | data(32) | update count(8) | bump(1) | reserved(1)
const SizeV2 = reservedOffset + 1

const reservedOffset = commonSize

// SchemaV2 - state is a raw byte followed by an explicit reserved byte
var SchemaV2 Schema = schemaV2{}

type schemaV2 struct{}

func (schemaV2) Version() Version { return V2 }
func (schemaV2) Size() int        { return SizeV2 }
func (schemaV2) Seed() []byte     { return []byte("mystate_v2") }

// Pack - encode a record, the state byte is stored as is
func (schemaV2) Pack(r *Record) ([]byte, error) {
	buffer := make([]byte, SizeV2)
	packCommon(buffer, r)
	buffer[reservedOffset] = r.Reserved
	return buffer, nil
}

// Unpack - decode a record, the buffer must be exactly SizeV2
func (schemaV2) Unpack(buffer []byte) (*Record, error) {
	if SizeV2 != len(buffer) {
		return nil, fault.ErrRecordLength
	}
	r, err := unpackCommon(buffer)
	if nil != err {
		return nil, err
	}
	r.Reserved = buffer[reservedOffset]
	return r, nil
}
