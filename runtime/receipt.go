// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/fault"
	"github.com/bitmark-inc/staterecord/storage"
)

// Receipt - the recorded outcome of a transaction
type Receipt struct {
	Signature account.Signature `json:"signature" cbor:"1,keyasint"`
	Success   bool              `json:"success" cbor:"2,keyasint"`
	Kind      string            `json:"kind,omitempty" cbor:"3,keyasint,omitempty"`
	Error     string            `json:"error,omitempty" cbor:"4,keyasint,omitempty"`
}

// deterministic so a stored receipt has a single encoding
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if nil != err {
		panic("runtime: CBOR encoder initialisation failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if nil != err {
		panic("runtime: CBOR decoder initialisation failed: " + err.Error())
	}
}

func newReceipt(signature account.Signature, err error) *Receipt {
	receipt := &Receipt{
		Signature: signature,
		Success:   nil == err,
	}
	if nil != err {
		receipt.Kind = fault.Kind(err)
		receipt.Error = err.Error()
	}
	return receipt
}

// Pack - storage form of a receipt
func (receipt *Receipt) Pack() ([]byte, error) {
	return encMode.Marshal(receipt)
}

// UnpackReceipt - decode the storage form of a receipt
func UnpackReceipt(buffer []byte) (*Receipt, error) {
	receipt := &Receipt{}
	err := decMode.Unmarshal(buffer, receipt)
	if nil != err {
		return nil, err
	}
	return receipt, nil
}

// GetReceipt - look up a processed transaction by its signature
func GetReceipt(handle storage.Handle, signature account.Signature) (*Receipt, error) {
	buffer := handle.Get(signature)
	if nil == buffer {
		return nil, fault.ErrTransactionNotFound
	}
	return UnpackReceipt(buffer)
}
