// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage maintains the on-disk ledger
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. key          = account address (32 byte public key or program derived address)
// 4. signature    = ed25519 signature of the first signer of a transaction (64 bytes)
//
// Accounts:
//
//   A ++ key                   - account state
//                                data: lamports ++ owner ++ executable ++ account data
//
// Transactions:
//
//   T ++ signature             - processed transaction
//                                data: CBOR encoded receipt
//
// Version:
//
//   0x00 ++ "VERSION"          - database version
//                                data: big endian uint32
package storage
