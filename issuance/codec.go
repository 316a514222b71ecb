// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuance

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/issuance/cursor"
	"github.com/bitmark-inc/issuance/issueflags"
	"github.com/bitmark-inc/issuance/payment"
	"github.com/bitmark-inc/issuance/sffc"
)

// AmountCodec - self delimiting encoding of the unit count
type AmountCodec interface {
	Encode(amount uint64) ([]byte, error)
	Decode(r *cursor.Reader) (uint64, int, error)
}

// FlagCodec - divisibility and lock status in exactly one byte
type FlagCodec interface {
	Encode(divisibility uint8, lockStatus bool) (byte, error)
	Decode(r *cursor.Reader) (uint8, bool, error)
}

// PaymentCodec - payment list that runs to the end of its buffer
type PaymentCodec interface {
	EncodeBulk(payments []payment.Payment) ([]byte, error)
	DecodeBulk(r *cursor.Reader) ([]payment.Payment, error)
}

//go:generate mockgen -package mocks -destination mocks/collaborators.go github.com/bitmark-inc/issuance/issuance AmountCodec,FlagCodec,PaymentCodec

// Codec - encoder/decoder with its collaborators
//
// a Codec is not modified by Encode or Decode so one value can be
// shared by any number of goroutines; nil collaborators fall back to
// the defaults and a nil Log disables logging
type Codec struct {
	Log      *logger.L
	Amount   AmountCodec
	Flags    FlagCodec
	Payments PaymentCodec
}

// New - codec using the default collaborators
func New(log *logger.L) *Codec {
	return &Codec{
		Log:      log,
		Amount:   SFFCAmount{},
		Flags:    IssueFlags{},
		Payments: PaymentList{},
	}
}

var defaultCodec = New(nil)

// Encode - encode using the default codec
func Encode(record *Record, byteSizeLimit int) (*Encoded, error) {
	return defaultCodec.Encode(record, byteSizeLimit)
}

// Decode - decode using the default codec
func Decode(buffer Packed) (*Record, error) {
	return defaultCodec.Decode(buffer)
}

// DecodeText - decode hex or base58 text using the default codec
func DecodeText(text string, encoding string) (*Record, error) {
	return defaultCodec.DecodeText(text, encoding)
}

func (codec *Codec) amount() AmountCodec {
	if nil == codec.Amount {
		return SFFCAmount{}
	}
	return codec.Amount
}

func (codec *Codec) flags() FlagCodec {
	if nil == codec.Flags {
		return IssueFlags{}
	}
	return codec.Flags
}

func (codec *Codec) payments() PaymentCodec {
	if nil == codec.Payments {
		return PaymentList{}
	}
	return codec.Payments
}

func (codec *Codec) debugf(format string, arguments ...interface{}) {
	if nil != codec.Log {
		codec.Log.Debugf(format, arguments...)
	}
}

// SFFCAmount - default amount codec
type SFFCAmount struct{}

func (SFFCAmount) Encode(amount uint64) ([]byte, error) {
	return sffc.Encode(amount)
}

func (SFFCAmount) Decode(r *cursor.Reader) (uint64, int, error) {
	return sffc.Decode(r)
}

// IssueFlags - default flag codec
type IssueFlags struct{}

func (IssueFlags) Encode(divisibility uint8, lockStatus bool) (byte, error) {
	return issueflags.Encode(divisibility, lockStatus)
}

func (IssueFlags) Decode(r *cursor.Reader) (uint8, bool, error) {
	return issueflags.Decode(r)
}

// PaymentList - default payment codec
type PaymentList struct{}

func (PaymentList) EncodeBulk(payments []payment.Payment) ([]byte, error) {
	return payment.EncodeBulk(payments)
}

func (PaymentList) DecodeBulk(r *cursor.Reader) ([]payment.Payment, error) {
	return payment.DecodeBulk(r)
}
