// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rent

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
)

// defaults for a new ledger
const (
	DefaultLamportsPerByteYear = 3480
	DefaultExemptionThreshold  = 2.0
	DefaultBurnPercent         = 50
)

// AccountStorageOverhead - bytes charged for every account on top of its data
const AccountStorageOverhead = 128

// Size - bytes in the sysvar encoding
const Size = 8 + 8 + 1

// Rent - the rent parameters published in the rent sysvar
type Rent struct {
	LamportsPerByteYear uint64  `gluamapper:"lamports_per_byte_year" json:"lamportsPerByteYear,string"`
	ExemptionThreshold  float64 `gluamapper:"exemption_threshold" json:"exemptionThreshold"`
	BurnPercent         uint8   `gluamapper:"burn_percent" json:"burnPercent"`
}

// Default - rent with the default parameters
func Default() *Rent {
	return &Rent{
		LamportsPerByteYear: DefaultLamportsPerByteYear,
		ExemptionThreshold:  DefaultExemptionThreshold,
		BurnPercent:         DefaultBurnPercent,
	}
}

// MinimumBalance - lamports needed for an account of dataSize bytes to be
// exempt from rent
func (r *Rent) MinimumBalance(dataSize int) uint64 {
	bytes := uint64(AccountStorageOverhead + dataSize)
	return uint64(float64(bytes*r.LamportsPerByteYear) * r.ExemptionThreshold)
}

// Pack - sysvar encoding
//
//   lamports_per_byte_year(8) | exemption_threshold(8, float64) | burn_percent(1)
func (r *Rent) Pack() []byte {
	buffer := make([]byte, Size)
	binary.LittleEndian.PutUint64(buffer[0:8], r.LamportsPerByteYear)
	binary.LittleEndian.PutUint64(buffer[8:16], math.Float64bits(r.ExemptionThreshold))
	buffer[16] = r.BurnPercent
	return buffer
}

// Unpack - decode the sysvar encoding
func Unpack(buffer []byte) (*Rent, error) {
	if Size != len(buffer) {
		return nil, fault.ErrRentDataLength
	}
	return &Rent{
		LamportsPerByteYear: binary.LittleEndian.Uint64(buffer[0:8]),
		ExemptionThreshold:  math.Float64frombits(binary.LittleEndian.Uint64(buffer[8:16])),
		BurnPercent:         buffer[16],
	}, nil
}

// FromAccount - load rent from the sysvar account passed to an instruction
func FromAccount(info *account.Info) (*Rent, error) {
	if address.RentSysvar != info.Key {
		return nil, fault.ErrInvalidRentSysvar
	}
	return Unpack(info.Data)
}

// Account - the sysvar account holding these parameters
func (r *Rent) Account() *account.Account {
	return &account.Account{
		Lamports: 1,
		Owner:    address.SysvarOwner,
		Data:     r.Pack(),
	}
}
