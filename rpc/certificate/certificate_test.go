// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/staterecord/fault"
	"github.com/bitmark-inc/staterecord/rpc/certificate"
	"github.com/bitmark-inc/staterecord/rpc/fixtures"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer := fixtures.Certificate()
	key := fixtures.Key()

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", fixtures.Key())
	assert.NotNil(t, err, "invalid certificate accepted")
}

func TestGenerateAndLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "certificate")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")

	err = certificate.Generate("rpc", certificateFile, keyFile, []string{"127.0.0.1"})
	assert.Nil(t, err, "wrong Generate")

	tlsConfig, fingerprint, err := certificate.Load(logger.New(fixtures.LogCategory), "rpc", certificateFile, keyFile)
	assert.Nil(t, err, "wrong Load")
	assert.Equal(t, certificate.Fingerprint(tlsConfig.Certificates[0].Certificate[0]), fingerprint, "wrong fingerprint")

	err = certificate.Generate("rpc", certificateFile, keyFile, nil)
	assert.Equal(t, fault.ErrCertificateFileExists, err, "certificate overwritten")

	_, _, err = certificate.Load(logger.New(fixtures.LogCategory), "rpc", filepath.Join(dir, "absent.crt"), keyFile)
	assert.NotNil(t, err, "absent certificate loaded")
}
