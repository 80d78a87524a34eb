// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/staterecord/account"
)

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := m.config.Account(c.String("key"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetAccount(key)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runAirdrop(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := m.config.Account(c.String("key"))
	if nil != err {
		return err
	}

	lamports := c.Uint64("lamports")
	if 0 == lamports {
		return fmt.Errorf("lamports is required")
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Airdrop(key, lamports)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runReceipt(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var signature account.Signature
	err := signature.UnmarshalText([]byte(c.String("signature")))
	if nil != err {
		return err
	}
	if 0 == len(signature) {
		return fmt.Errorf("signature is required")
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetReceipt(signature)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
