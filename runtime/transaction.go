// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"encoding/binary"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
	"github.com/bitmark-inc/staterecord/instruction"
)

// flag bits of an account reference in the signed message
const (
	signerFlag   = 0x01
	writableFlag = 0x02
)

// limits on a transaction
const (
	maxAccounts = 255
	maxDataSize = 65535
)

// Transaction - one signed instruction
//
// the nonce lets an owner submit the same instruction more than once
type Transaction struct {
	Instruction *instruction.Instruction `json:"instruction"`
	Nonce       uint64                   `json:"nonce,string"`
	Signatures  []account.Signature      `json:"signatures"` // hex, in signer order
}

// NewTransaction - wrap an instruction for signing
func NewTransaction(ix *instruction.Instruction, nonce uint64) *Transaction {
	return &Transaction{
		Instruction: ix,
		Nonce:       nonce,
	}
}

// Message - the bytes covered by every signature
//
//   program id(32) | nonce(8) | account count(1) | (key(32) | flags(1))... | data length(2) | data
func (tx *Transaction) Message() ([]byte, error) {
	ix := tx.Instruction
	if nil == ix {
		return nil, fault.ErrMissingParameters
	}
	if len(ix.Accounts) > maxAccounts {
		return nil, fault.ErrNotEnoughAccountKeys
	}
	if len(ix.Data) > maxDataSize {
		return nil, fault.ErrInstructionDataLength
	}

	buffer := make([]byte, 0, address.Size+8+1+len(ix.Accounts)*(address.Size+1)+2+len(ix.Data))
	buffer = append(buffer, ix.ProgramID[:]...)

	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, tx.Nonce)
	buffer = append(buffer, nonce...)

	buffer = append(buffer, byte(len(ix.Accounts)))
	for _, meta := range ix.Accounts {
		flags := byte(0)
		if meta.IsSigner {
			flags |= signerFlag
		}
		if meta.IsWritable {
			flags |= writableFlag
		}
		buffer = append(buffer, meta.Key[:]...)
		buffer = append(buffer, flags)
	}

	length := make([]byte, 2)
	binary.LittleEndian.PutUint16(length, uint16(len(ix.Data)))
	buffer = append(buffer, length...)

	return append(buffer, ix.Data...), nil
}

// Signers - keys that must sign, in order of first appearance
func (tx *Transaction) Signers() []address.Address {
	if nil == tx.Instruction {
		return nil
	}
	signers := make([]address.Address, 0, len(tx.Instruction.Accounts))
	seen := make(map[address.Address]struct{})
	for _, meta := range tx.Instruction.Accounts {
		if !meta.IsSigner {
			continue
		}
		if _, ok := seen[meta.Key]; ok {
			continue
		}
		seen[meta.Key] = struct{}{}
		signers = append(signers, meta.Key)
	}
	return signers
}

// Sign - replace the signatures using the supplied key pairs
//
// every signer must have a key pair
func (tx *Transaction) Sign(keyPairs ...*account.KeyPair) error {
	message, err := tx.Message()
	if nil != err {
		return err
	}

	byAddress := make(map[address.Address]*account.KeyPair)
	for _, keyPair := range keyPairs {
		byAddress[keyPair.Address()] = keyPair
	}

	signers := tx.Signers()
	signatures := make([]account.Signature, 0, len(signers))
	for _, signer := range signers {
		keyPair, ok := byAddress[signer]
		if !ok {
			return fault.ErrMissingRequiredSignature
		}
		signatures = append(signatures, keyPair.Sign(message))
	}

	tx.Signatures = signatures
	return nil
}

// Verify - check that every signer signed the message
func (tx *Transaction) Verify() error {
	message, err := tx.Message()
	if nil != err {
		return err
	}

	signers := tx.Signers()
	if 0 == len(signers) {
		return fault.ErrMissingRequiredSignature
	}
	if len(signers) != len(tx.Signatures) {
		return fault.ErrSignatureCount
	}

	for i, signer := range signers {
		err := tx.Signatures[i].Verify(signer, message)
		if nil != err {
			return err
		}
	}
	return nil
}

// ID - the first signature identifies the transaction
func (tx *Transaction) ID() account.Signature {
	if 0 == len(tx.Signatures) {
		return nil
	}
	return tx.Signatures[0]
}
