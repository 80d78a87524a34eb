// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared data for the RPC tests
package fixtures

import (
	"bytes"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// ProgramID - the record program used by all RPC tests
var ProgramID = address.MustFromBase58("3F5q36zsGX3Lcd8FQb7vTYmphvxHY8TFdBJVZzzepz31")

// OwnerSeed - seed of the record owner key pair
var OwnerSeed = bytes.Repeat([]byte{0x42}, 32)

// Owner - the record owner key pair
func Owner() *account.KeyPair {
	keyPair, err := account.KeyPairFromSeed(OwnerSeed)
	if nil != err {
		panic(err)
	}
	return keyPair
}

// SetupTestLogger - start logging into a throw-away directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the log directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

var tlsPair struct {
	once        sync.Once
	certificate string
	key         string
}

func generate() {
	cert, key, err := certgen.NewTLSCertPair("recordd test", time.Now().Add(time.Hour), true, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	tlsPair.certificate = string(cert)
	tlsPair.key = string(key)
}

// Certificate - PEM text of a self-signed test certificate
func Certificate() string {
	tlsPair.once.Do(generate)
	return tlsPair.certificate
}

// Key - PEM text of the private key matching Certificate
func Key() string {
	tlsPair.once.Do(generate)
	return tlsPair.key
}
