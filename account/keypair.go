// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
)

// KeyPair - an ed25519 signing key, its public half is an owner address
type KeyPair struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// NewKeyPair - generate a random key pair
func NewKeyPair(rand io.Reader) (*KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}, nil
}

// KeyPairFromSeed - rebuild a key pair from its 32 byte seed
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{
		PublicKey:  privateKey.Public().(ed25519.PublicKey),
		PrivateKey: privateKey,
	}, nil
}

// Address - the account key of this key pair
func (keyPair *KeyPair) Address() address.Address {
	a := address.Address{}
	copy(a[:], keyPair.PublicKey)
	return a
}

// Seed - the private seed, for saving in an identity file
func (keyPair *KeyPair) Seed() []byte {
	return keyPair.PrivateKey.Seed()
}

// Sign - sign a message
func (keyPair *KeyPair) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(keyPair.PrivateKey, message))
}
