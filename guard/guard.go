// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package guard holds the precondition checks shared by the record
// instructions; each returns the fault for the first failed condition
package guard

import (
	"github.com/bitmark-inc/staterecord/account"
	"github.com/bitmark-inc/staterecord/address"
	"github.com/bitmark-inc/staterecord/fault"
)

// RequireSigner - the account must have signed the transaction
func RequireSigner(info *account.Info) error {
	if !info.IsSigner {
		return fault.ErrMissingRequiredSignature
	}
	return nil
}

// RequireEmpty - no storage may have been allocated yet
func RequireEmpty(info *account.Info) error {
	if !info.DataIsEmpty() {
		return fault.ErrAccountAlreadyInitialised
	}
	return nil
}

// RequireNonEmpty - storage must already exist
func RequireNonEmpty(info *account.Info) error {
	if info.DataIsEmpty() {
		return fault.ErrAccountNotInitialised
	}
	return nil
}

// RequireAddressMatch - the account key must be the derived address
func RequireAddressMatch(info *account.Info, derived address.Address) error {
	if derived != info.Key {
		return fault.ErrAddressMismatch
	}
	return nil
}

// RequireOwnerEquals - a claimed owner must be the signing key
func RequireOwnerEquals(owner address.Address, signer *account.Info) error {
	if owner != signer.Key {
		return fault.ErrInvalidOwner
	}
	return nil
}

// RequireProgramOwned - the account must be assigned to the program
func RequireProgramOwned(info *account.Info, program address.Address) error {
	if program != info.Owner {
		return fault.ErrIllegalOwner
	}
	return nil
}

// RequireKey - a fixed slot must hold a well known account
func RequireKey(info *account.Info, expected address.Address) error {
	if expected != info.Key {
		return fault.ErrIncorrectProgramId
	}
	return nil
}
