// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2022 Craftforge Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
//
// the Ledger… values are the ledger-state errors returned by the
// reference in-process ledger; an external ledger is free to return
// its own values and the engine passes them through untouched
var (
	AccountCountMismatch        = InvalidError("account count mismatch")
	AlreadyInitialised          = ProcessError("already initialised")
	AlreadyRegistered           = ExistsError("formula already registered")
	AmountOutOfRange            = InvalidError("amount out of range")
	AuthorityDerivationMismatch = InvalidError("authority derivation mismatch")
	CannotDecodeIdentity        = RecordError("cannot decode identity")
	ChecksumMismatch            = InvalidError("checksum mismatch")
	CustodyNotHeldByAuthority   = InvalidError("custody account is not held by the output authority")
	FormulaNotFound             = NotFoundError("formula not found")
	InsufficientAmount          = InvalidError("insufficient amount")
	InvalidAssetType            = InvalidError("invalid asset type")
	InvalidCount                = LengthError("invalid count")
	InvalidNilCollaborator      = ProcessError("invalid nil collaborator")
	LedgerAssetTypeMismatch     = ProcessError("ledger: asset type mismatch")
	LedgerDuplicateAssetType    = ExistsError("ledger: duplicate asset type")
	LedgerDuplicateHolding      = ExistsError("ledger: duplicate holding")
	LedgerInsufficientBalance   = ProcessError("ledger: insufficient balance")
	LedgerNoSuchAssetType       = NotFoundError("ledger: no such asset type")
	LedgerNoSuchHolding         = NotFoundError("ledger: no such holding")
	LedgerNotAuthorized         = ProcessError("ledger: not authorized")
	MissingCustodyAccount       = InvalidError("missing custody account")
	MissingUniqueSource         = InvalidError("missing unique source account")
	NotAssetType                = RecordError("not an asset type")
	NotFormulaId                = RecordError("not a formula id")
	NotFormulaRecord            = RecordError("not a formula record")
	NotHoldingRef               = RecordError("not a holding reference")
	NotIdentity                 = RecordError("not an identity")
	NotInitialised              = ProcessError("not initialised")
	UnauthorizedHolder          = InvalidError("unauthorized holder")
	WrongDatabaseVersion        = ProcessError("wrong database version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
