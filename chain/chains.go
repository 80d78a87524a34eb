// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"strings"
)

// names of all chains
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Live, Testing, Local:
		return true
	default:
		return false
	}
}

// Canonical - lower case chain name with the common aliases resolved
func Canonical(name string) string {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "bitmark", "main", "mainnet":
		return Live
	case "test", "testnet":
		return Testing
	case "regression", "dev":
		return Local
	default:
		return n
	}
}

// FaucetAllowed - only non-live chains may credit accounts from nothing
func FaucetAllowed(name string) bool {
	return Testing == name || Local == name
}

// DatabaseName - default leveldb directory name for a chain
func DatabaseName(name string) string {
	return name + ".leveldb"
}
