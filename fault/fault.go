// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AccessDeniedError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AllocationNotConfigured      = NotFoundError("allocation not configured")
	AlreadyInitialised           = ExistsError("already initialised")
	AlreadySet                   = ExistsError("already set")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CannotDecodePrivateKey       = InvalidError("cannot decode private key")
	CannotDecodeSeed             = InvalidError("cannot decode seed")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	ContractCallerForbidden      = AccessDeniedError("contract caller forbidden")
	CryptoFailed                 = ProcessError("crypto failed")
	CustodyOverflow              = ProcessError("custody overflow")
	DatabaseIsNotSet             = ProcessError("database is not set")
	IdentityNameAlreadyExists    = ExistsError("identity name already exists")
	IdentityNameNotFound         = NotFoundError("identity name not found")
	IncompatibleOptions          = InvalidError("incompatible options")
	InsufficientAllocation       = ProcessError("insufficient allocation")
	InsufficientPayment          = ProcessError("insufficient payment")
	InvalidAllowlistEntry        = InvalidError("invalid allowlist entry")
	InvalidCapacity              = InvalidError("invalid capacity")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIpAddress             = InvalidError("invalid ip Address")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidOrigin                = InvalidError("invalid origin")
	InvalidPasswordLength        = LengthError("invalid password length")
	InvalidPhase                 = InvalidError("invalid phase")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKey            = InvalidError("invalid private key")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKey             = InvalidError("invalid public key")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidRecipient             = InvalidError("invalid recipient")
	InvalidSeedHeader            = InvalidError("invalid seed header")
	InvalidSeedLength            = LengthError("invalid seed length")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = LengthError("missing parameters")
	NotAvailableDuringStartup    = ProcessError("not available during startup")
	NotDigest                    = RecordError("not digest")
	NotInitialised               = ProcessError("not initialised")
	NotPrivateKey                = RecordError("not private key")
	NotPublicKey                 = RecordError("not public key")
	NotUnitOwner                 = AccessDeniedError("not unit owner")
	NotUnitRecord                = RecordError("not unit record")
	PasswordMismatch             = InvalidError("password mismatch")
	PerTransactionLimitExceeded  = ProcessError("per transaction limit exceeded")
	PhaseNotActive               = ProcessError("phase not active")
	RateLimiting                 = ProcessError("rate limiting")
	ReservationExceeded          = ProcessError("reservation exceeded")
	SupplyExceeded               = ProcessError("supply exceeded")
	TransferFailed               = ProcessError("transfer failed")
	Unauthorized                 = AccessDeniedError("unauthorized")
	UnitNotFound                 = NotFoundError("unit not found")
	UnmarshalTextFailed          = InvalidError("unmarshal text failed")
	WrongNetworkForPublicKey     = InvalidError("wrong network for public key")
	WrongPassword                = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessDeniedError) Error() string { return string(e) }
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e LengthError) Error() string       { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e RecordError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAccessDenied(e error) bool { _, ok := e.(AccessDeniedError); return ok }
func IsErrExists(e error) bool       { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool       { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool       { _, ok := e.(RecordError); return ok }
