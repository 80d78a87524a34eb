// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
)

func TestWellKnown(t *testing.T) {
	assert.Equal(t, "11111111111111111111111111111111", address.SystemProgram.String(), "wrong system program text")
	assert.True(t, address.SystemProgram.IsZero(), "system program not zero")
	assert.Equal(t, "SysvarRent111111111111111111111111111111111", address.RentSysvar.String(), "wrong rent sysvar text")
	assert.False(t, address.RentSysvar.IsZero(), "rent sysvar is zero")
}

func TestBase58RoundTrip(t *testing.T) {
	a := address.Address{}
	for i := range a {
		a[i] = byte(i * 7)
	}

	decoded, err := address.FromBase58(a.String())
	assert.Nil(t, err, "decode error")
	assert.Equal(t, a, decoded, "round trip")
}

func TestFromBase58Invalid(t *testing.T) {
	_, err := address.FromBase58("0OIl")
	assert.Equal(t, fault.ErrInvalidBase58, err, "wrong error for invalid alphabet")

	_, err = address.FromBase58("1111")
	assert.Equal(t, fault.ErrInvalidAddressLength, err, "wrong error for short address")
}

func TestFromBytes(t *testing.T) {
	_, err := address.FromBytes(make([]byte, 31))
	assert.Equal(t, fault.ErrInvalidAddressLength, err, "wrong error for 31 bytes")

	a, err := address.FromBytes(make([]byte, 32))
	assert.Nil(t, err, "error for 32 bytes")
	assert.True(t, a.IsZero(), "not zero")
}

func TestJSON(t *testing.T) {
	type wrapper struct {
		Key address.Address `json:"key"`
	}
	w := wrapper{Key: address.RentSysvar}

	buffer, err := json.Marshal(w)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"key":"SysvarRent111111111111111111111111111111111"}`, string(buffer), "wrong JSON")

	var r wrapper
	err = json.Unmarshal(buffer, &r)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, w, r, "JSON round trip")

	err = json.Unmarshal([]byte(`{"key":"abc"}`), &r)
	assert.NotNil(t, err, "expected error for short key")
}
