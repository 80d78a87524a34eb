// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
	"github.com/bitmark-inc/staterecord/record"
	"github.com/bitmark-inc/staterecord/rpc/fixtures"
	"github.com/bitmark-inc/staterecord/rpc/mocks"
	rpcrecord "github.com/bitmark-inc/staterecord/rpc/record"
)

func TestRecordDerive(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := rpcrecord.New(logger.New(fixtures.LogCategory), fixtures.ProgramID, mocks.NewMockLedger(ctl))

	owner := fixtures.Owner().Address()

	for _, schema := range []record.Schema{record.SchemaV1, record.SchemaV2} {
		expected, bump, err := address.FindProgramAddress(record.Seeds(schema, owner), fixtures.ProgramID)
		assert.Nil(t, err, "find")

		// second call is answered from the cache
		for i := 0; i < 2; i += 1 {
			var reply rpcrecord.DeriveReply
			err = r.Derive(&rpcrecord.DeriveArguments{Owner: owner, Version: schema.Version()}, &reply)
			assert.Nil(t, err, "wrong Derive")
			assert.Equal(t, expected, reply.Address, "V%d: wrong address", schema.Version())
			assert.Equal(t, bump, reply.Bump, "V%d: wrong bump", schema.Version())
			assert.Equal(t, string(schema.Seed()), reply.Seed, "V%d: wrong seed", schema.Version())
		}
	}

	var reply rpcrecord.DeriveReply
	err := r.Derive(&rpcrecord.DeriveArguments{Owner: owner, Version: record.Version(3)}, &reply)
	assert.Equal(t, fault.ErrUnknownSchema, err, "unknown version accepted")
}

func TestRecordDeriveSchemasDiffer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := rpcrecord.New(logger.New(fixtures.LogCategory), fixtures.ProgramID, mocks.NewMockLedger(ctl))
	owner := fixtures.Owner().Address()

	var v1, v2 rpcrecord.DeriveReply
	assert.Nil(t, r.Derive(&rpcrecord.DeriveArguments{Owner: owner, Version: record.V1}, &v1), "V1")
	assert.Nil(t, r.Derive(&rpcrecord.DeriveArguments{Owner: owner, Version: record.V2}, &v2), "V2")
	assert.NotEqual(t, v1.Address, v2.Address, "schemas share an address")
}

func TestRecordGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	r := rpcrecord.New(logger.New(fixtures.LogCategory), fixtures.ProgramID, l)

	owner := fixtures.Owner().Address()
	pda, bump, err := address.FindProgramAddress(record.Seeds(record.SchemaV1, owner), fixtures.ProgramID)
	assert.Nil(t, err, "find")

	rec := &record.Record{
		Initialised: true,
		Owner:       owner,
		State:       record.Updated,
		UpdateCount: 2,
		Bump:        bump,
	}
	rec.Data[0] = 0x55

	packed, err := record.SchemaV1.Pack(rec)
	assert.Nil(t, err, "pack")

	l.EXPECT().Account(pda).Return(&account.Account{
		Lamports: 1412880,
		Owner:    fixtures.ProgramID,
		Data:     packed,
	}, nil).Times(1)

	var reply rpcrecord.GetReply
	err = r.Get(&rpcrecord.GetArguments{Owner: owner, Version: record.V1}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, pda, reply.Address, "wrong address")
	assert.Equal(t, uint64(1412880), reply.Lamports, "wrong lamports")
	assert.Equal(t, record.V1, reply.Version, "wrong version")
	assert.Equal(t, rec, reply.Record, "wrong record")
}

func TestRecordGetErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	r := rpcrecord.New(logger.New(fixtures.LogCategory), fixtures.ProgramID, l)

	owner := fixtures.Owner().Address()
	pda, _, err := address.FindProgramAddress(record.Seeds(record.SchemaV2, owner), fixtures.ProgramID)
	assert.Nil(t, err, "find")

	gomock.InOrder(
		l.EXPECT().Account(pda).Return(account.Empty(), nil),
		l.EXPECT().Account(pda).Return(&account.Account{
			Lamports: 1419840,
			Owner:    address.SystemProgram,
			Data:     make([]byte, record.SizeV2),
		}, nil),
		l.EXPECT().Account(pda).Return(&account.Account{
			Lamports: 1412880,
			Owner:    fixtures.ProgramID,
			Data:     make([]byte, record.SizeV1),
		}, nil),
		l.EXPECT().Account(pda).Return(nil, fault.ErrNotInitialised),
	)

	expected := []error{
		fault.ErrAccountNotInitialised,
		fault.ErrIllegalOwner,
		fault.ErrRecordLength,
		fault.ErrNotInitialised,
	}

	for i, e := range expected {
		var reply rpcrecord.GetReply
		err := r.Get(&rpcrecord.GetArguments{Owner: owner, Version: record.V2}, &reply)
		assert.Equal(t, e, err, "%d: wrong error", i)
	}

	// an unknown schema is refused before the ledger is read
	var reply rpcrecord.GetReply
	err = r.Get(&rpcrecord.GetArguments{Owner: owner, Version: record.Version(3)}, &reply)
	assert.Equal(t, fault.ErrUnknownSchema, err, "unknown version accepted")
	assert.Nil(t, reply.Record, "record returned for unknown version")
}
