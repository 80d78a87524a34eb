// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AccountShapeError GenericError
type AddressDerivationError GenericError
type AuthorizationError GenericError
type ExistsError GenericError
type FundingError GenericError
type InvalidError GenericError
type LayoutError GenericError
type NotFoundError GenericError
type OwnerMismatchError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyInUse         = ExistsError("account already in use")
	ErrAccountAlreadyInitialised   = ExistsError("account already initialised")
	ErrAccountDataTooLarge         = LayoutError("account data too large")
	ErrAccountNotInitialised       = NotFoundError("account not initialised")
	ErrAccountRecordTooShort       = LayoutError("account record too short")
	ErrAddressMismatch             = AddressDerivationError("account address does not match derived address")
	ErrAlreadyInitialised          = ProcessError("already initialised")
	ErrBumpMismatch                = AddressDerivationError("bump is not the canonical bump")
	ErrCertificateFileExists       = ExistsError("certificate file already exists")
	ErrCryptoFailed                = ProcessError("encryption failed")
	ErrDuplicateTransaction        = InvalidError("transaction already processed")
	ErrExternalAccountDataModified = ProcessError("instruction modified data of an account it does not own")
	ErrExternalLamportSpend        = ProcessError("instruction spent lamports of an account it does not own")
	ErrFaucetDisabled              = InvalidError("faucet is disabled")
	ErrFaucetLimitExceeded         = InvalidError("faucet limit exceeded")
	ErrIdentityNameAlreadyExists   = ExistsError("identity name already exists")
	ErrIdentityNameNotFound        = NotFoundError("identity name not found")
	ErrIllegalOwner                = AuthorizationError("account is not owned by the program")
	ErrIncorrectProgramId          = AccountShapeError("incorrect program id")
	ErrInstructionDataLength       = LayoutError("instruction data length mismatch")
	ErrInsufficientFunds           = FundingError("insufficient funds for rent exempt allocation")
	ErrInvalidAddressLength        = InvalidError("address length is invalid")
	ErrInvalidBase58               = InvalidError("invalid base58 encoding")
	ErrInvalidIPAddress            = InvalidError("invalid IP address")
	ErrInvalidInitialisedFlag      = LayoutError("invalid initialised flag")
	ErrInvalidOwner                = OwnerMismatchError("owner does not match signer")
	ErrInvalidPasswordLength       = InvalidError("password must be at least 8 characters")
	ErrInvalidRentSysvar           = AccountShapeError("invalid rent sysvar account")
	ErrInvalidSalt                 = InvalidError("invalid salt")
	ErrInvalidSeeds                = AddressDerivationError("derived address is on the ed25519 curve")
	ErrInvalidSignature            = AuthorizationError("invalid signature")
	ErrInvalidState                = LayoutError("invalid state discriminant")
	ErrInvalidStructPointer        = InvalidError("invalid struct pointer")
	ErrKeyFileExists               = ExistsError("key file already exists")
	ErrKeyLength                   = InvalidError("key length is invalid")
	ErrLamportsNotConserved        = ProcessError("instruction did not conserve lamports")
	ErrMaxSeedLengthExceeded       = AddressDerivationError("seed length exceeded")
	ErrMissingConfiguration        = InvalidError("configuration must return a table")
	ErrMissingListen               = InvalidError("missing listen address")
	ErrMissingParameters           = InvalidError("missing parameters")
	ErrMissingRequiredSignature    = AuthorizationError("missing required signature")
	ErrNoViableBump                = AddressDerivationError("unable to find a viable bump")
	ErrNotEnoughAccountKeys        = AccountShapeError("wrong number of account keys")
	ErrNotInitialised              = ProcessError("not initialised")
	ErrNotPrivateKey               = InvalidError("identity has no private key")
	ErrPasswordMismatch            = InvalidError("passwords do not match")
	ErrRateLimiting                = InvalidError("rate limiting")
	ErrReadonlyDataModified        = ProcessError("instruction modified a read-only account")
	ErrRecordLength                = LayoutError("record length mismatch")
	ErrRentDataLength              = LayoutError("rent sysvar data length mismatch")
	ErrReservedNotInLayout         = LayoutError("reserved byte is not part of the layout")
	ErrSignatureCount              = AuthorizationError("signature count does not match signers")
	ErrTooManySeeds                = AddressDerivationError("too many seeds")
	ErrTransactionInUse            = ProcessError("transaction already in use")
	ErrTransactionNotFound         = NotFoundError("transaction not found")
	ErrUnknownInstruction          = InvalidError("unknown instruction selector")
	ErrUnknownProgram              = InvalidError("unknown program")
	ErrUnknownSchema               = InvalidError("unknown schema version")
	ErrWrongPassword               = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccountShapeError) Error() string      { return string(e) }
func (e AddressDerivationError) Error() string { return string(e) }
func (e AuthorizationError) Error() string     { return string(e) }
func (e ExistsError) Error() string            { return string(e) }
func (e FundingError) Error() string           { return string(e) }
func (e InvalidError) Error() string           { return string(e) }
func (e LayoutError) Error() string            { return string(e) }
func (e NotFoundError) Error() string          { return string(e) }
func (e OwnerMismatchError) Error() string     { return string(e) }
func (e ProcessError) Error() string           { return string(e) }

// determine the class of an error
func IsErrAccountShape(e error) bool      { _, ok := e.(AccountShapeError); return ok }
func IsErrAddressDerivation(e error) bool { _, ok := e.(AddressDerivationError); return ok }
func IsErrAuthorization(e error) bool     { _, ok := e.(AuthorizationError); return ok }
func IsErrExists(e error) bool            { _, ok := e.(ExistsError); return ok }
func IsErrFunding(e error) bool           { _, ok := e.(FundingError); return ok }
func IsErrInvalid(e error) bool           { _, ok := e.(InvalidError); return ok }
func IsErrLayout(e error) bool            { _, ok := e.(LayoutError); return ok }
func IsErrNotFound(e error) bool          { _, ok := e.(NotFoundError); return ok }
func IsErrOwnerMismatch(e error) bool     { _, ok := e.(OwnerMismatchError); return ok }
func IsErrProcess(e error) bool           { _, ok := e.(ProcessError); return ok }

// Kind - the name of the error class carried in a failed result
//
// ExistsError and NotFoundError report as the account lifecycle kinds
func Kind(e error) string {
	switch e.(type) {
	case nil:
		return ""
	case AccountShapeError:
		return "AccountShapeError"
	case AddressDerivationError:
		return "AddressDerivationError"
	case AuthorizationError:
		return "AuthorizationError"
	case ExistsError:
		return "AlreadyInitializedError"
	case FundingError:
		return "FundingError"
	case InvalidError:
		return "InvalidError"
	case LayoutError:
		return "LayoutError"
	case NotFoundError:
		return "NotInitializedError"
	case OwnerMismatchError:
		return "OwnerMismatchError"
	case ProcessError:
		return "ProcessError"
	default:
		return "GenericError"
	}
}
