// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/command/record-cli/configuration"
)

type infoReply struct {
	DefaultIdentity string                       `json:"default_identity"`
	Chain           string                       `json:"chain"`
	Connect         string                       `json:"connect"`
	ProgramID       address.Address              `json:"program_id"`
	Identities      []configuration.IdentityInfo `json:"identities"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	printJson(m.w, infoReply{
		DefaultIdentity: m.config.DefaultIdentity,
		Chain:           m.config.Chain,
		Connect:         m.config.Connect,
		ProgramID:       m.config.ProgramID,
		Identities:      m.config.Info(),
	})
	return nil
}

func runRecorddInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}

	printJson(m.w, info)
	return nil
}
