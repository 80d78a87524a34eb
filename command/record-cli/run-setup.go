// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/command/record-cli/configuration"
)

const defaultIdentityName = "default"

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	connect := strings.TrimSpace(c.String("connect"))
	if "" == connect {
		return fmt.Errorf("connect is required")
	}

	programID, err := address.FromBase58(c.String("program"))
	if nil != err {
		return err
	}

	m.config = configuration.New(m.network, connect, programID)

	keyPair, err := keyPairFromFlag(c.String("seed"))
	if nil != err {
		return err
	}

	err = addPrivateIdentity(c, m, keyPair)
	if nil != err {
		return err
	}

	m.save = true
	return nil
}

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed := c.String("seed")
	generate := c.Bool("new")
	acc := c.String("account")

	selected := 0
	for _, b := range []bool{"" != seed, generate, "" != acc} {
		if b {
			selected += 1
		}
	}
	if 1 != selected {
		return fmt.Errorf("exactly one of seed, new or account is required")
	}

	if "" != acc {
		key, err := address.FromBase58(acc)
		if nil != err {
			return err
		}
		name, description, err := identityNaming(c)
		if nil != err {
			return err
		}
		err = m.config.AddReceiveOnlyIdentity(name, description, key)
		if nil != err {
			return err
		}
		m.save = true
		return nil
	}

	keyPair, err := keyPairFromFlag(seed)
	if nil != err {
		return err
	}

	err = addPrivateIdentity(c, m, keyPair)
	if nil != err {
		return err
	}

	m.save = true
	return nil
}

func addPrivateIdentity(c *cli.Context, m *metadata, keyPair *account.KeyPair) error {
	name, description, err := identityNaming(c)
	if nil != err {
		return err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPasswordReader()
		if nil != err {
			return err
		}
	} else if len(password) < minimumPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minimumPasswordLength)
	}

	err = m.config.AddIdentity(name, description, keyPair, password)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %q  account: %s\n", name, keyPair.Address())
	}
	return nil
}

func identityNaming(c *cli.Context) (string, string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = defaultIdentityName
	}
	description := c.String("description")
	if "" == description {
		return "", "", fmt.Errorf("description is required")
	}
	return name, description, nil
}

// an existing hex seed or a new random key pair
func keyPairFromFlag(seed string) (*account.KeyPair, error) {
	if "" == seed {
		return account.NewKeyPair(rand.Reader)
	}
	buffer, err := hex.DecodeString(strings.TrimSpace(seed))
	if nil != err {
		return nil, err
	}
	return account.KeyPairFromSeed(buffer)
}
