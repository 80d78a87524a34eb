// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
	"github.com/bitmark-inc/staterecord/record"
	"github.com/bitmark-inc/staterecord/rpc/ratelimit"
	"github.com/bitmark-inc/staterecord/runtime"
)

const (
	rateLimitRecord = 200
	rateBurstRecord = 100

	derivationExpiry  = 30 * time.Minute
	derivationCleanup = time.Hour
)

// Record - type for the RPC
type Record struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	ProgramID address.Address
	Runtime   runtime.Ledger
	derived   *cache.Cache
}

// New - create the record service for one program
func New(log *logger.L, programID address.Address, r runtime.Ledger) *Record {
	return &Record{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitRecord, rateBurstRecord),
		ProgramID: programID,
		Runtime:   r,
		derived:   cache.New(derivationExpiry, derivationCleanup),
	}
}

// Derive
// ------

// DeriveArguments - arguments for RPC
type DeriveArguments struct {
	Owner   address.Address `json:"owner"`
	Version record.Version  `json:"version"`
}

// DeriveReply - result of derive RPC
type DeriveReply struct {
	Address address.Address `json:"address"`
	Bump    uint8           `json:"bump"`
	Version record.Version  `json:"version"`
	Seed    string          `json:"seed"`
}

// Derive - the record address of an owner under one schema
func (r *Record) Derive(arguments *DeriveArguments, reply *DeriveReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	r.Log.Infof("Record.Derive: owner: %s  version: %d", arguments.Owner, arguments.Version)

	d, _, err := r.derive(arguments.Owner, arguments.Version)
	if nil != err {
		return err
	}

	*reply = *d
	return nil
}

// Get
// ---

// GetArguments - arguments for RPC
type GetArguments struct {
	Owner   address.Address `json:"owner"`
	Version record.Version  `json:"version"`
}

// GetReply - result of get RPC
type GetReply struct {
	Address  address.Address `json:"address"`
	Lamports uint64          `json:"lamports,string"`
	Version  record.Version  `json:"version"`
	Record   *record.Record  `json:"record"`
}

// Get - the decoded record of an owner under one schema
func (r *Record) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	log := r.Log
	log.Infof("Record.Get: owner: %s  version: %d", arguments.Owner, arguments.Version)

	d, schema, err := r.derive(arguments.Owner, arguments.Version)
	if nil != err {
		return err
	}

	a, err := r.Runtime.Account(d.Address)
	if nil != err {
		return err
	}

	if 0 == len(a.Data) {
		return fault.ErrAccountNotInitialised
	}
	if r.ProgramID != a.Owner {
		log.Debugf("account: %s  owner: %s", d.Address, a.Owner)
		return fault.ErrIllegalOwner
	}

	rec, err := schema.Unpack(a.Data)
	if nil != err {
		return err
	}

	reply.Address = d.Address
	reply.Lamports = a.Lamports
	reply.Version = arguments.Version
	reply.Record = rec
	return nil
}

// derivations are pure so a cached result never goes stale
func (r *Record) derive(owner address.Address, version record.Version) (*DeriveReply, record.Schema, error) {

	schema, err := record.ForVersion(version)
	if nil != err {
		return nil, nil, err
	}

	key := string(schema.Seed()) + owner.String()
	if d, ok := r.derived.Get(key); ok {
		return d.(*DeriveReply), schema, nil
	}

	pda, bump, err := address.FindProgramAddress(record.Seeds(schema, owner), r.ProgramID)
	if nil != err {
		return nil, nil, err
	}

	d := &DeriveReply{
		Address: pda,
		Bump:    bump,
		Version: version,
		Seed:    string(schema.Seed()),
	}
	r.derived.SetDefault(key, d)

	return d, schema, nil
}
