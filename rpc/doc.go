// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring recordd services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//   Ledger.Submit   - execute a signed transaction
//   Ledger.Account  - committed state of an account
//   Ledger.Airdrop  - faucet credit (when enabled)
//   Ledger.Receipt  - outcome of a processed transaction
//   Record.Derive   - record address of an owner under a schema
//   Record.Get      - decoded record of an owner under a schema
//   Node.Info       - version, chain, program and connection count
package rpc
