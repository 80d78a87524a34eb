// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/staterecord/chain"
	"github.com/bitmark-inc/staterecord/command/record-cli/configuration"
	"github.com/bitmark-inc/staterecord/util"
)

type metadata struct {
	file    string
	network string
	config  *configuration.Configuration
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "record-cli"
	app.Usage = "create, update and inspect owner state records"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Local,
			Usage: " connect to recordd `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "Initialise record-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*recordd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "program, P",
					Value: defaultProgramID,
					Usage: " record program `ID`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing hex seed `SEED`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing hex seed `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new key pair",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only base58 `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "info",
			Usage:  "display record-cli configuration",
			Action: runInfo,
		},
		{
			Name:      "derive",
			Usage:     "display the record address of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
				cli.UintFlag{
					Name:  "version, V",
					Value: 0,
					Usage: " record layout `VERSION` [1|2], both if omitted",
				},
			},
			Action: runDerive,
		},
		{
			Name:      "initialise",
			Usage:     "create the record of the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{versionFlag, dataFlag},
			Action:    runInitialise,
		},
		{
			Name:      "update",
			Usage:     "overwrite the data of the current identity's record",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{versionFlag, dataFlag},
			Action:    runUpdate,
		},
		{
			Name:      "show",
			Usage:     "display the decoded record of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag, versionFlag},
			Action:    runShow,
		},
		{
			Name:      "account",
			Usage:     "display an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " identity name or base58 `ACCOUNT` [default identity]",
				},
			},
			Action: runAccount,
		},
		{
			Name:      "airdrop",
			Usage:     "credit an account from the faucet of a test network",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " identity name or base58 `ACCOUNT` [default identity]",
				},
				cli.Uint64Flag{
					Name:  "lamports, l",
					Value: 0,
					Usage: "*`AMOUNT` to credit",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:      "receipt",
			Usage:     "display the outcome of a submitted transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "signature, s",
					Value: "",
					Usage: "*transaction `SIGNATURE` in hex",
				},
			},
			Action: runReceipt,
		},
		{
			Name:   "recorddInfo",
			Usage:  "display recordd status",
			Action: runRecorddInfo,
		},
		{
			Name:  "version",
			Usage: "display record-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "generate", "help", "h":
			c.App.Metadata["config"] = &metadata{
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		// only want one of these
		network := chain.Canonical(c.GlobalString("network"))
		if !chain.Valid(network) {
			return fmt.Errorf("network: %q can only be live/testing/local", network)
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		if info, err := os.Stat(p); nil != err {
			return err
		} else if !info.IsDir() {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:    file,
			network: network,
			save:    false,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if util.EnsureFileExists(file) {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}
			if err := os.MkdirAll(path.Dir(file), 0700); nil != err {
				return err
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			configuration, err := configuration.Load(file)
			if nil != err {
				return err
			}
			m.config = configuration
		}

		c.App.Metadata["config"] = m
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
