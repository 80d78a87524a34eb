// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/counter"
	"github.com/bitmark-inc/staterecord/rpc/ledger"
	"github.com/bitmark-inc/staterecord/rpc/node"
	"github.com/bitmark-inc/staterecord/rpc/record"
	"github.com/bitmark-inc/staterecord/runtime"
)

// Configuration - what the services need to know about the node
type Configuration struct {
	Version   string
	Chain     string
	ProgramID address.Address
}

// Create - an RPC server with every client service registered
func Create(log *logger.L, configuration Configuration, r runtime.Ledger, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(ledger.New(log, r))
	_ = server.Register(record.New(log, configuration.ProgramID, r))
	_ = server.Register(node.New(log, start, configuration.Version, configuration.Chain, configuration.ProgramID, rpcCount))

	return server
}
