// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type BudgetExceededError GenericError
type InvalidError GenericError
type MalformedInputError GenericError
type MissingFieldError GenericError
type MissingHashError GenericError
type ProcessError GenericError
type UnrecognizedOpcodeError GenericError

// common errors - keep in alphabetic order
var (
	ErrAmountNotRepresentable    = InvalidError("amount cannot be represented exactly")
	ErrAmountOverflow            = MalformedInputError("amount overflows 64 bits")
	ErrCannotFitTorrentHash      = BudgetExceededError("cannot fit torrent hash in byte size")
	ErrDataExceedsByteSize       = BudgetExceededError("data code is bigger than the allowed byte size")
	ErrDivisibilityOutOfRange    = InvalidError("divisibility is not in range 0..7")
	ErrInvalidAmountEncoding     = MalformedInputError("invalid amount encoding")
	ErrInvalidConfigFile         = InvalidError("configuration file did not return a table")
	ErrInvalidHashLength         = InvalidError("hash length is invalid")
	ErrInvalidHashText           = InvalidError("hash text is neither hex nor base58")
	ErrInvalidOutputFormat       = InvalidError("invalid output format")
	ErrInvalidPackedText         = MalformedInputError("packed text is not valid")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrInvalidTextEncoding       = InvalidError("invalid text encoding")
	ErrMissingAmountOfUnits      = MissingFieldError("amount of units is missing")
	ErrMissingDivisibility       = MissingFieldError("divisibility is missing")
	ErrMissingLockStatus         = MissingFieldError("lock status is missing")
	ErrMissingProtocol           = MissingFieldError("protocol is missing")
	ErrMissingRecord             = MissingFieldError("issuance record is missing")
	ErrMissingTorrentHash        = MissingHashError("torrent hash is missing")
	ErrMissingVersion            = MissingFieldError("version is missing")
	ErrNegativeTake              = MalformedInputError("negative byte count")
	ErrPackedTooShort            = MalformedInputError("packed issuance is too short")
	ErrPaymentOutputOutOfBounds  = InvalidError("payment output is out of bounds")
	ErrPaymentPercentOutOfBounds = InvalidError("payment percent is out of bounds")
	ErrReservedOpcode            = UnrecognizedOpcodeError("reserved opcode")
	ErrTruncatedBuffer           = MalformedInputError("buffer is truncated")
	ErrUnrecognizedOpcode        = UnrecognizedOpcodeError("unrecognized opcode")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e BudgetExceededError) Error() string     { return string(e) }
func (e InvalidError) Error() string            { return string(e) }
func (e MalformedInputError) Error() string     { return string(e) }
func (e MissingFieldError) Error() string       { return string(e) }
func (e MissingHashError) Error() string        { return string(e) }
func (e ProcessError) Error() string            { return string(e) }
func (e UnrecognizedOpcodeError) Error() string { return string(e) }

// determine the class of an error
func IsErrBudgetExceeded(e error) bool     { _, ok := e.(BudgetExceededError); return ok }
func IsErrInvalid(e error) bool            { _, ok := e.(InvalidError); return ok }
func IsErrMalformedInput(e error) bool     { _, ok := e.(MalformedInputError); return ok }
func IsErrMissingField(e error) bool       { _, ok := e.(MissingFieldError); return ok }
func IsErrMissingHash(e error) bool        { _, ok := e.(MissingHashError); return ok }
func IsErrProcess(e error) bool            { _, ok := e.(ProcessError); return ok }
func IsErrUnrecognizedOpcode(e error) bool { _, ok := e.(UnrecognizedOpcodeError); return ok }
