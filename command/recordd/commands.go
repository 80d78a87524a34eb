// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/record"
	"github.com/bitmark-inc/staterecord/rpc/certificate"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.Generate("rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "derive", "d":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing owner argument")
		}

		owner, err := address.FromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error: owner: %q  error: %s", arguments[0], err)
		}

		programID := address.MustFromBase58(defaultProgramID)
		if len(arguments) > 1 {
			programID, err = address.FromBase58(arguments[1])
			if nil != err {
				exitwithstatus.Message("error: program: %q  error: %s", arguments[1], err)
			}
		}

		versions := []record.Version{record.V1, record.V2}
		if len(arguments) > 2 {
			n, err := strconv.ParseUint(arguments[2], 10, 8)
			if nil != err {
				exitwithstatus.Message("error in version: %s", err)
			}
			versions = []record.Version{record.Version(n)}
		}

		derived, err := deriveAddresses(owner, programID, versions)
		if nil != err {
			exitwithstatus.Message("derive error: %s", err)
		}
		printJSON(derived)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  derive OWNER [PROGRAM [V]] (d)      - display the record addresses of an owner\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	default: // start and run continue to the main program
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// one record address
type derivation struct {
	Version record.Version  `json:"version"`
	Seed    string          `json:"seed"`
	Address address.Address `json:"address"`
	Bump    uint8           `json:"bump"`
}

// record addresses of an owner under each requested schema
func deriveAddresses(owner address.Address, programID address.Address, versions []record.Version) ([]derivation, error) {

	derived := make([]derivation, 0, len(versions))
	for _, v := range versions {
		schema, err := record.ForVersion(v)
		if nil != err {
			return nil, err
		}
		pda, bump, err := address.FindProgramAddress(record.Seeds(schema, owner), programID)
		if nil != err {
			return nil, err
		}
		derived = append(derived, derivation{
			Version: v,
			Seed:    string(schema.Seed()),
			Address: pda,
			Bump:    bump,
		})
	}
	return derived, nil
}

func printJSON(message interface{}) {
	b, err := json.Marshal(message)
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	json.Indent(&out, b, "", "  ")
	out.WriteTo(os.Stdout)
	os.Stdout.WriteString("\n")
}

// get the directory from the first argument (if present) and
// prefix the file name with it
func getFilenameWithDirectory(arguments []string, name string) string {
	directory := "."
	if len(arguments) >= 1 {
		directory = arguments[0]
	}
	return filepath.Join(directory, name)
}
