// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
	"github.com/bitmark-inc/staterecord/instruction"
	"github.com/bitmark-inc/staterecord/program"
	"github.com/bitmark-inc/staterecord/record"
	"github.com/bitmark-inc/staterecord/rent"
	"github.com/bitmark-inc/staterecord/runtime"
	"github.com/bitmark-inc/staterecord/storage"
	"github.com/bitmark-inc/staterecord/system"
)

const airdropAmount = 5000000

var (
	testProgram = address.MustFromBase58("3F5q36zsGX3Lcd8FQb7vTYmphvxHY8TFdBJVZzzepz31")
	testFake    = address.MustFromBase58("2xNweLHLqrbx4zo1waDvgWJHgsUpPj8Y8icbAFeR4a8i")
)

func keyPair(t *testing.T, fill byte) *account.KeyPair {
	k, err := account.KeyPairFromSeed(bytes.Repeat([]byte{fill}, 32))
	assert.Nil(t, err, "key pair")
	return k
}

func data(b byte) record.Data {
	d := record.Data{}
	for i := range d {
		d[i] = b
	}
	return d
}

// processor calling a test function
type processorFunc func(accounts []*account.Info, data []byte) error

func (f processorFunc) Process(accounts []*account.Info, data []byte) error {
	return f(accounts, data)
}

func newRuntime(t *testing.T, extra map[address.Address]runtime.Processor) *runtime.Runtime {
	setupStorage(t)

	log := logger.New(category)
	programs := map[address.Address]runtime.Processor{
		testProgram: program.New(log, program.Config{ProgramID: testProgram}, system.New(log)),
	}
	for id, p := range extra {
		programs[id] = p
	}

	r := runtime.New(log, programs, runtime.FaucetConfiguration{
		Enabled: true,
		Maximum: 2 * airdropAmount,
	})
	assert.Nil(t, r.Genesis(rent.Default()), "genesis")
	return r
}

func funded(t *testing.T, r *runtime.Runtime, fill byte) *account.KeyPair {
	k := keyPair(t, fill)
	_, err := r.Airdrop(k.Address(), airdropAmount)
	assert.Nil(t, err, "airdrop")
	return k
}

func submit(t *testing.T, r *runtime.Runtime, ix *instruction.Instruction, nonce uint64, signers ...*account.KeyPair) (*runtime.Receipt, error) {
	tx := runtime.NewTransaction(ix, nonce)
	assert.Nil(t, tx.Sign(signers...), "sign")
	return r.Execute(tx)
}

func TestGenesis(t *testing.T) {
	r := newRuntime(t, nil)
	defer teardownStorage()

	a, err := r.Account(address.RentSysvar)
	assert.Nil(t, err, "rent account")
	assert.Equal(t, address.SysvarOwner, a.Owner, "rent owner")
	parameters, err := rent.Unpack(a.Data)
	assert.Nil(t, err, "rent data")
	assert.Equal(t, rent.Default(), parameters, "rent parameters")

	a, err = r.Account(testProgram)
	assert.Nil(t, err, "program account")
	assert.True(t, a.Executable, "program executable")

	// a second genesis keeps existing accounts
	assert.Nil(t, r.Genesis(&rent.Rent{LamportsPerByteYear: 1, ExemptionThreshold: 1}), "second genesis")
	a, err = r.Account(address.RentSysvar)
	assert.Nil(t, err, "rent account")
	parameters, err = rent.Unpack(a.Data)
	assert.Nil(t, err, "rent data")
	assert.Equal(t, rent.Default(), parameters, "rent overwritten")
}

func TestAirdrop(t *testing.T) {
	r := newRuntime(t, nil)
	defer teardownStorage()

	k := keyPair(t, 1)
	a, err := r.Airdrop(k.Address(), airdropAmount)
	assert.Nil(t, err, "airdrop")
	assert.Equal(t, uint64(airdropAmount), a.Lamports, "returned balance")

	_, err = r.Airdrop(k.Address(), 2*airdropAmount+1)
	assert.Equal(t, fault.ErrFaucetLimitExceeded, err, "over limit")

	_, err = r.Airdrop(k.Address(), 0)
	assert.Equal(t, fault.ErrFaucetLimitExceeded, err, "zero")

	a, err = r.Account(k.Address())
	assert.Nil(t, err, "account")
	assert.Equal(t, uint64(airdropAmount), a.Lamports, "stored balance")
	assert.Equal(t, address.SystemProgram, a.Owner, "owner")
}

func TestAirdropDisabled(t *testing.T) {
	setupStorage(t)
	defer teardownStorage()

	r := runtime.New(logger.New(category), nil, runtime.FaucetConfiguration{})
	_, err := r.Airdrop(testFake, 1)
	assert.Equal(t, fault.ErrFaucetDisabled, err, "disabled faucet")

	r.SetFaucet(runtime.FaucetConfiguration{Enabled: true, Maximum: 5})
	a, err := r.Airdrop(testFake, 5)
	assert.Nil(t, err, "enabled faucet")
	assert.Equal(t, uint64(5), a.Lamports, "balance")

	_, err = r.Airdrop(testFake, 6)
	assert.Equal(t, fault.ErrFaucetLimitExceeded, err, "new maximum")

	r.SetFaucet(runtime.FaucetConfiguration{})
	_, err = r.Airdrop(testFake, 1)
	assert.Equal(t, fault.ErrFaucetDisabled, err, "disabled again")
}

func TestAccountAbsent(t *testing.T) {
	r := newRuntime(t, nil)
	defer teardownStorage()

	a, err := r.Account(testFake)
	assert.Nil(t, err, "absent account")
	assert.True(t, a.IsEmpty(), "absent account not empty")
}

func TestInitialiseAndUpdate(t *testing.T) {
	r := newRuntime(t, nil)
	defer teardownStorage()

	owner := funded(t, r, 1)

	ix, err := instruction.NewInitialise(testProgram, record.V2, owner.Address(), data(7))
	assert.Nil(t, err, "initialise instruction")

	receipt, err := submit(t, r, ix, 0, owner)
	assert.Nil(t, err, "execute")
	assert.True(t, receipt.Success, "initialise failed: %s", receipt.Error)

	recordKey := ix.Accounts[1].Key
	a, err := r.Account(recordKey)
	assert.Nil(t, err, "record account")
	assert.Equal(t, testProgram, a.Owner, "record owner")
	assert.Equal(t, rent.Default().MinimumBalance(record.SizeV2), a.Lamports, "record balance")

	payer, err := r.Account(owner.Address())
	assert.Nil(t, err, "payer account")
	assert.Equal(t, uint64(airdropAmount)-a.Lamports, payer.Lamports, "payer balance")

	ix, err = instruction.NewUpdate(testProgram, record.V2, owner.Address(), data(8))
	assert.Nil(t, err, "update instruction")

	for nonce := uint64(1); nonce <= 2; nonce += 1 {
		receipt, err = submit(t, r, ix, nonce, owner)
		assert.Nil(t, err, "execute")
		assert.True(t, receipt.Success, "update failed: %s", receipt.Error)
	}

	a, err = r.Account(recordKey)
	assert.Nil(t, err, "record account")
	state, err := record.SchemaV2.Unpack(a.Data)
	assert.Nil(t, err, "record")
	assert.Equal(t, uint64(2), state.UpdateCount, "count")
	assert.Equal(t, data(8), state.Data, "data")
	assert.Equal(t, record.Updated, state.State, "state")

	stored, err := r.Receipt(receipt.Signature)
	assert.Nil(t, err, "stored receipt")
	assert.Equal(t, receipt, stored, "receipt round trip")
}

func TestFailedInstructionIsRecorded(t *testing.T) {
	r := newRuntime(t, nil)
	defer teardownStorage()

	owner := funded(t, r, 1)

	ix, err := instruction.NewInitialise(testProgram, record.V1, owner.Address(), data(7))
	assert.Nil(t, err, "initialise instruction")
	receipt, err := submit(t, r, ix, 0, owner)
	assert.Nil(t, err, "execute")
	assert.True(t, receipt.Success, "initialise")

	before, err := r.Account(owner.Address())
	assert.Nil(t, err, "payer")

	receipt, err = submit(t, r, ix, 1, owner)
	assert.Nil(t, err, "execute")
	assert.False(t, receipt.Success, "second initialise succeeded")
	assert.Equal(t, "AlreadyInitializedError", receipt.Kind, "kind")

	after, err := r.Account(owner.Address())
	assert.Nil(t, err, "payer")
	assert.Equal(t, before, after, "failed instruction changed the payer")

	stored, err := r.Receipt(receipt.Signature)
	assert.Nil(t, err, "stored receipt")
	assert.False(t, stored.Success, "stored success")
	assert.Equal(t, receipt.Error, stored.Error, "stored error")
}

func TestUpdateByNonOwner(t *testing.T) {
	r := newRuntime(t, nil)
	defer teardownStorage()

	owner := funded(t, r, 1)
	intruder := funded(t, r, 2)

	ix, err := instruction.NewInitialise(testProgram, record.V1, owner.Address(), data(7))
	assert.Nil(t, err, "initialise instruction")
	receipt, err := submit(t, r, ix, 0, owner)
	assert.Nil(t, err, "execute")
	assert.True(t, receipt.Success, "initialise")
	recordKey := ix.Accounts[1].Key

	// the intruder signs an update of the owner's record
	update := &instruction.Instruction{
		ProgramID: testProgram,
		Accounts: []account.Meta{
			account.NewMeta(intruder.Address(), true),
			account.NewMeta(recordKey, false),
		},
		Data: (&instruction.Update{Version: record.V1, Data: data(0xee)}).Pack(),
	}
	receipt, err = submit(t, r, update, 0, intruder)
	assert.Nil(t, err, "execute")
	assert.False(t, receipt.Success, "intruder update succeeded")
	assert.Equal(t, "OwnerMismatchError", receipt.Kind, "kind")

	a, err := r.Account(recordKey)
	assert.Nil(t, err, "record")
	state, err := record.SchemaV1.Unpack(a.Data)
	assert.Nil(t, err, "record")
	assert.Equal(t, data(7), state.Data, "record changed")
	assert.Equal(t, uint64(0), state.UpdateCount, "count changed")
}

func TestRejectedTransactions(t *testing.T) {
	r := newRuntime(t, nil)
	defer teardownStorage()

	owner := funded(t, r, 1)
	other := keyPair(t, 2)

	ix, err := instruction.NewInitialise(testProgram, record.V1, owner.Address(), data(7))
	assert.Nil(t, err, "instruction")

	// unsigned
	_, err = r.Execute(runtime.NewTransaction(ix, 0))
	assert.Equal(t, fault.ErrSignatureCount, err, "unsigned")

	// signed by the wrong key
	tx := runtime.NewTransaction(ix, 0)
	message, err := tx.Message()
	assert.Nil(t, err, "message")
	tx.Signatures = []account.Signature{other.Sign(message)}
	_, err = r.Execute(tx)
	assert.Equal(t, fault.ErrInvalidSignature, err, "wrong signer")

	// signature over a different nonce
	tx = runtime.NewTransaction(ix, 0)
	assert.Nil(t, tx.Sign(owner), "sign")
	tx.Nonce = 1
	_, err = r.Execute(tx)
	assert.Equal(t, fault.ErrInvalidSignature, err, "replayed with new nonce")

	// missing key pair
	tx = runtime.NewTransaction(ix, 0)
	assert.Equal(t, fault.ErrMissingRequiredSignature, tx.Sign(other), "sign without signer key")

	// unknown program
	unknown := &instruction.Instruction{
		ProgramID: testFake,
		Accounts:  []account.Meta{account.NewMeta(owner.Address(), true)},
	}
	_, err = submit(t, r, unknown, 0, owner)
	assert.Equal(t, fault.ErrUnknownProgram, err, "unknown program")

	// nothing was stored for rejected transactions
	a, err := r.Account(ix.Accounts[1].Key)
	assert.Nil(t, err, "record")
	assert.True(t, a.IsEmpty(), "record created")
}

func TestDuplicateTransaction(t *testing.T) {
	r := newRuntime(t, nil)
	defer teardownStorage()

	owner := funded(t, r, 1)
	ix, err := instruction.NewInitialise(testProgram, record.V1, owner.Address(), data(7))
	assert.Nil(t, err, "instruction")

	tx := runtime.NewTransaction(ix, 0)
	assert.Nil(t, tx.Sign(owner), "sign")

	_, err = r.Execute(tx)
	assert.Nil(t, err, "first")
	_, err = r.Execute(tx)
	assert.Equal(t, fault.ErrDuplicateTransaction, err, "replay")
	assert.True(t, fault.IsErrInvalid(err), "replay not classed as invalid")
	assert.Equal(t, "InvalidError", fault.Kind(err), "replay reported as a record lifecycle error")
}

func TestPostConditions(t *testing.T) {
	fakes := map[address.Address]runtime.Processor{
		testFake: processorFunc(func(accounts []*account.Info, data []byte) error {
			switch data[0] {
			case 0: // write a read-only account
				accounts[1].Data = []byte{1}
			case 1: // create lamports
				accounts[0].Lamports += 1
			case 2: // spend an account nobody signed for
				accounts[1].Lamports -= 1
				accounts[0].Lamports += 1
			case 3: // write data of an account owned by another program
				accounts[1].Data = []byte{1}
			case 4: // move lamports from the signer
				accounts[0].Lamports -= 1
				accounts[1].Lamports += 1
			}
			return nil
		}),
	}

	r := newRuntime(t, fakes)
	defer teardownStorage()

	signer := funded(t, r, 1)
	victim := funded(t, r, 2)

	cases := []struct {
		op       byte
		writable bool
		err      error
	}{
		{0, false, fault.ErrReadonlyDataModified},
		{1, true, fault.ErrLamportsNotConserved},
		{2, true, fault.ErrExternalLamportSpend},
		{3, true, fault.ErrExternalAccountDataModified},
		{4, true, nil},
	}

	for i, c := range cases {
		meta := account.NewMeta(victim.Address(), false)
		meta.IsWritable = c.writable
		ix := &instruction.Instruction{
			ProgramID: testFake,
			Accounts: []account.Meta{
				account.NewMeta(signer.Address(), true),
				meta,
			},
			Data: instruction.Packed{c.op},
		}

		receipt, err := submit(t, r, ix, uint64(i), signer)
		assert.Nil(t, err, "%d: execute", i)
		if nil == c.err {
			assert.True(t, receipt.Success, "%d: failed: %s", i, receipt.Error)
			continue
		}
		assert.False(t, receipt.Success, "%d: succeeded", i)
		assert.Equal(t, c.err.Error(), receipt.Error, "%d: error", i)
	}

	a, err := r.Account(victim.Address())
	assert.Nil(t, err, "victim")
	assert.Equal(t, uint64(airdropAmount+1), a.Lamports, "victim balance")
	assert.Equal(t, 0, len(a.Data), "victim data")
}

func TestDuplicateAccountsShareState(t *testing.T) {
	var seen []*account.Info
	fakes := map[address.Address]runtime.Processor{
		testFake: processorFunc(func(accounts []*account.Info, data []byte) error {
			seen = accounts
			return nil
		}),
	}

	r := newRuntime(t, fakes)
	defer teardownStorage()

	signer := funded(t, r, 1)
	ix := &instruction.Instruction{
		ProgramID: testFake,
		Accounts: []account.Meta{
			account.NewMeta(signer.Address(), true),
			account.NewReadonlyMeta(signer.Address(), false),
		},
	}
	receipt, err := submit(t, r, ix, 0, signer)
	assert.Nil(t, err, "execute")
	assert.True(t, receipt.Success, "failed")
	assert.True(t, seen[0] == seen[1], "duplicate accounts are separate views")
	assert.True(t, seen[1].IsWritable, "flags not merged")
}

func TestReceiptNotFound(t *testing.T) {
	r := newRuntime(t, nil)
	defer teardownStorage()

	_, err := r.Receipt(account.Signature{1, 2, 3})
	assert.Equal(t, fault.ErrTransactionNotFound, err, "missing receipt")
}

func TestReceiptPack(t *testing.T) {
	receipt := &runtime.Receipt{
		Signature: account.Signature{1, 2, 3},
		Success:   false,
		Kind:      "LayoutError",
		Error:     fault.ErrRecordLength.Error(),
	}

	packed, err := receipt.Pack()
	assert.Nil(t, err, "pack")

	again, err := receipt.Pack()
	assert.Nil(t, err, "pack")
	assert.Equal(t, packed, again, "encoding not deterministic")

	unpacked, err := runtime.UnpackReceipt(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, receipt, unpacked, "round trip")

	_, err = runtime.UnpackReceipt([]byte{0xff})
	assert.NotNil(t, err, "garbage accepted")
}

func TestMessageCoversFlags(t *testing.T) {
	k := keyPair(t, 1)
	ix := &instruction.Instruction{
		ProgramID: testProgram,
		Accounts:  []account.Meta{account.NewMeta(k.Address(), true)},
		Data:      instruction.Packed{1, 2},
	}
	tx := runtime.NewTransaction(ix, 9)
	m1, err := tx.Message()
	assert.Nil(t, err, "message")

	ix.Accounts[0].IsWritable = false
	m2, err := tx.Message()
	assert.Nil(t, err, "message")
	assert.NotEqual(t, m1, m2, "writable flag not signed")

	assert.Equal(t, []address.Address{k.Address()}, tx.Signers(), "signers")

	_, err = runtime.NewTransaction(nil, 0).Message()
	assert.Equal(t, fault.ErrMissingParameters, err, "nil instruction")
}

func TestStorageUnavailable(t *testing.T) {
	r := runtime.New(logger.New(category), nil, runtime.FaucetConfiguration{Enabled: true, Maximum: 1})
	_, err := r.Airdrop(testFake, 1)
	assert.Equal(t, fault.ErrNotInitialised, err, "airdrop without storage")

	assert.Nil(t, storage.Pool.Accounts.Get(testFake[:]), "read without storage")
}
