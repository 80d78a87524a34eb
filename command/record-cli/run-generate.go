// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
)

type generateReply struct {
	Account address.Address `json:"account"`
	Seed    string          `json:"seed"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyPair, err := account.NewKeyPair(rand.Reader)
	if nil != err {
		return err
	}

	printJson(m.w, generateReply{
		Account: keyPair.Address(),
		Seed:    hex.EncodeToString(keyPair.Seed()),
	})
	return nil
}
