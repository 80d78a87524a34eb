// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/staterecord/fault"
)

// Size - number of bytes in an address
const Size = 32

// Address - a 32 byte account key, either an ed25519 public key or a
// program derived address
type Address [Size]byte

// well known addresses
var (
	SystemProgram = Address{}
	RentSysvar    = MustFromBase58("SysvarRent111111111111111111111111111111111")
	SysvarOwner   = MustFromBase58("Sysvar1111111111111111111111111111111111111")
)

// FromBytes - convert a byte slice to an address
func FromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if Size != len(buffer) {
		return a, fault.ErrInvalidAddressLength
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the text form of an address
func FromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.ErrInvalidBase58
	}
	return FromBytes(buffer)
}

// MustFromBase58 - decode a constant address, panics on failure
func MustFromBase58(s string) Address {
	a, err := FromBase58(s)
	if nil != err {
		panic("address: " + s + ": " + err.Error())
	}
	return a
}

// Bytes - the address as a byte slice
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero - true for the all zero address
func (a Address) IsZero() bool {
	return Address{} == a
}

// String - base58 text form
func (a Address) String() string {
	return base58.Encode(a[:])
}

// MarshalText - convert an address to its base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert a base58 JSON form to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
