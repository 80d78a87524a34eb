// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/command/record-cli/rpccalls"
	"github.com/bitmark-inc/staterecord/record"
)

const defaultProgramID = "3F5q36zsGX3Lcd8FQb7vTYmphvxHY8TFdBJVZzzepz31"

// flags shared by several commands
var (
	ownerFlag = cli.StringFlag{
		Name:  "owner, o",
		Value: "",
		Usage: " identity name or base58 `ACCOUNT` [default identity]",
	}
	versionFlag = cli.UintFlag{
		Name:  "version, V",
		Value: uint(record.V2),
		Usage: " record layout `VERSION` [1|2]",
	}
	dataFlag = cli.StringFlag{
		Name:  "data, d",
		Value: "",
		Usage: "*record data `HEX` up to 32 bytes, zero filled",
	}
)

// connect to the node named in the configuration
func newClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.config.Connect, m.config.ProgramID, m.verbose, m.e)
}

// the signing key of the selected identity
func signingKey(c *cli.Context, m *metadata) (*account.KeyPair, error) {
	name := c.GlobalString("identity")

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptCheckPasswordReader()
		if nil != err {
			return nil, err
		}
	}

	return m.config.KeyPair(password, name)
}

// parse a record version flag
func recordVersion(c *cli.Context) (record.Version, error) {
	v := c.Uint("version")
	if v > 255 {
		return 0, fmt.Errorf("invalid version: %d", v)
	}
	version := record.Version(v)
	if _, err := record.ForVersion(version); nil != err {
		return 0, err
	}
	return version, nil
}

// hex text to a zero filled payload
func parseData(s string) (record.Data, error) {
	var d record.Data
	if "" == s {
		return d, fmt.Errorf("data is required")
	}
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return d, err
	}
	if len(buffer) > record.DataSize {
		return d, fmt.Errorf("data: %d bytes exceeds: %d", len(buffer), record.DataSize)
	}
	copy(d[:], buffer)
	return d, nil
}
