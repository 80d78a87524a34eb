// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/command/record-cli/rpccalls"
	"github.com/bitmark-inc/staterecord/record"
	"github.com/bitmark-inc/staterecord/runtime"
	rpcrecord "github.com/bitmark-inc/staterecord/rpc/record"
)

func runDerive(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := m.config.Account(c.String("owner"))
	if nil != err {
		return err
	}

	versions := []record.Version{record.V1, record.V2}
	if 0 != c.Uint("version") {
		v, err := recordVersion(c)
		if nil != err {
			return err
		}
		versions = []record.Version{v}
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	replies := make([]*rpcrecord.DeriveReply, 0, len(versions))
	for _, v := range versions {
		d, err := client.Derive(owner, v)
		if nil != err {
			return err
		}
		replies = append(replies, d)
	}

	printJson(m.w, replies)
	return nil
}

func runInitialise(c *cli.Context) error {
	return submitRecord(c, "initialise", (*rpccalls.Client).Initialise)
}

func runUpdate(c *cli.Context) error {
	return submitRecord(c, "update", (*rpccalls.Client).Update)
}

type submitter func(*rpccalls.Client, *account.KeyPair, record.Version, record.Data) (*runtime.Receipt, error)

func submitRecord(c *cli.Context, title string, submit submitter) error {

	m := c.App.Metadata["config"].(*metadata)

	version, err := recordVersion(c)
	if nil != err {
		return err
	}

	data, err := parseData(c.String("data"))
	if nil != err {
		return err
	}

	owner, err := signingKey(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s: owner: %s  version: %d\n", title, owner.Address(), version)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := submit(client, owner, version, data)
	if nil != err {
		return err
	}

	printJson(m.w, receipt)
	return nil
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := m.config.Account(c.String("owner"))
	if nil != err {
		return err
	}

	version, err := recordVersion(c)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetRecord(owner, version)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
