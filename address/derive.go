// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/sha256"

	"filippo.io/edwards25519"

	"github.com/bitmark-inc/staterecord/fault"
)

// limits on derivation seeds, the bump counts as one seed
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

const programDerivedMarker = "ProgramDerivedAddress"

// CreateProgramAddress - hash the seeds and program id into an address
//
// the last seed is normally the bump; an address that lands on the
// ed25519 curve is rejected since a private key could exist for it
func CreateProgramAddress(seeds [][]byte, program Address) (Address, error) {
	if len(seeds) > MaxSeeds {
		return Address{}, fault.ErrTooManySeeds
	}

	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return Address{}, fault.ErrMaxSeedLengthExceeded
		}
		h.Write(seed)
	}
	h.Write(program[:])
	h.Write([]byte(programDerivedMarker))

	a := Address{}
	copy(a[:], h.Sum(nil))

	if IsOnCurve(a[:]) {
		return Address{}, fault.ErrInvalidSeeds
	}
	return a, nil
}

// FindProgramAddress - search for the canonical bump
//
// candidates are tried from 255 down to 0 and the first off curve
// result is returned, so the canonical bump is also the highest
// valid bump
func FindProgramAddress(seeds [][]byte, program Address) (Address, uint8, error) {
	bump := []byte{0}
	withBump := make([][]byte, 0, len(seeds)+1)
	withBump = append(withBump, seeds...)
	withBump = append(withBump, bump)

	for candidate := 255; candidate >= 0; candidate -= 1 {
		bump[0] = byte(candidate)
		a, err := CreateProgramAddress(withBump, program)
		if nil == err {
			return a, byte(candidate), nil
		}
		if fault.ErrInvalidSeeds != err {
			return Address{}, 0, err
		}
	}
	return Address{}, 0, fault.ErrNoViableBump
}

// VerifyProgramAddress - re-run the canonical search and compare
//
// a supplied bump is never trusted: both the address and the bump must
// match the canonical derivation
func VerifyProgramAddress(seeds [][]byte, bump uint8, program Address, expected Address) error {
	derived, canonical, err := FindProgramAddress(seeds, program)
	if nil != err {
		return err
	}
	if derived != expected {
		return fault.ErrAddressMismatch
	}
	if canonical != bump {
		return fault.ErrBumpMismatch
	}
	return nil
}

// SignerSeeds - the seeds with the bump appended, as used to sign for
// a program derived address
func SignerSeeds(seeds [][]byte, bump uint8) [][]byte {
	s := make([][]byte, 0, len(seeds)+1)
	s = append(s, seeds...)
	return append(s, []byte{bump})
}

// IsOnCurve - true if the bytes decode to a valid ed25519 point
func IsOnCurve(buffer []byte) bool {
	if Size != len(buffer) {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(buffer)
	return nil == err
}
