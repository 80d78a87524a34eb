// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - a set of writes applied to all pools at once
//
// reads made through the transaction see its own pending writes
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Put(*PoolHandle, []byte, []byte)
}

// TransactionData - the transaction over the database batch
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - open the transaction, fails if already open
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - queue a write
func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

// Delete - queue a delete
func (t *TransactionData) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

// Get - read a value including pending writes, nil if absent
func (t *TransactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.pending(key)
}

// Has - check a key including pending writes
func (t *TransactionData) Has(handle *PoolHandle, key []byte) bool {
	return nil != handle.pending(key)
}

// Commit - apply all pending writes atomically and close
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard all pending writes and close
func (t *TransactionData) Abort() {
	t.access.Abort()
}
