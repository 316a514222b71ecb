// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payment

import (
	"github.com/bitmark-inc/issuance/cursor"
	"github.com/bitmark-inc/issuance/fault"
	"github.com/bitmark-inc/issuance/sffc"
)

// output index limits
const (
	MaximumOutput      = 0x1f   // 5 bits
	MaximumRangeOutput = 0x1fff // 13 bits
	MaximumPercent     = 100
)

// leading byte layout
const (
	skipBit    = 0x80
	rangeBit   = 0x40
	percentBit = 0x20
	outputMask = 0x1f
)

// Payment - a single transfer instruction attached to an issuance
type Payment struct {
	Skip    bool   `json:"skip"`    // do not advance to the next input
	Range   bool   `json:"range"`   // output is the end of a range starting at zero
	Percent bool   `json:"percent"` // amount is a percentage of the remaining units
	Output  uint16 `json:"output"`  // output index
	Amount  uint64 `json:"amount"`  // units, or percent when Percent is set
}

// Encode - pack a single payment
//
// Structure
//   S | R | P | O4 | O3 | O2 | O1 | O0     [ O12..O5 when R ]  sffc(amount)
func Encode(payment Payment) ([]byte, error) {
	if payment.Range {
		if payment.Output > MaximumRangeOutput {
			return nil, fault.ErrPaymentOutputOutOfBounds
		}
	} else if payment.Output > MaximumOutput {
		return nil, fault.ErrPaymentOutputOutOfBounds
	}
	if payment.Percent && payment.Amount > MaximumPercent {
		return nil, fault.ErrPaymentPercentOutOfBounds
	}

	flags := byte(0)
	if payment.Skip {
		flags |= skipBit
	}
	if payment.Percent {
		flags |= percentBit
	}

	var message []byte
	if payment.Range {
		flags |= rangeBit
		message = []byte{flags | byte(payment.Output>>8), byte(payment.Output)}
	} else {
		message = []byte{flags | byte(payment.Output)}
	}

	amount, err := sffc.Encode(payment.Amount)
	if nil != err {
		return nil, err
	}
	return append(message, amount...), nil
}

// EncodeBulk - pack a list of payments in order
//
// an empty list packs to zero bytes
func EncodeBulk(payments []Payment) ([]byte, error) {
	message := make([]byte, 0, 3*len(payments))
	for _, p := range payments {
		b, err := Encode(p)
		if nil != err {
			return nil, err
		}
		message = append(message, b...)
	}
	return message, nil
}

// Decode - read one payment from the cursor
func Decode(r *cursor.Reader) (Payment, error) {
	flags, err := r.TakeByte()
	if nil != err {
		return Payment{}, err
	}

	payment := Payment{
		Skip:    0 != flags&skipBit,
		Range:   0 != flags&rangeBit,
		Percent: 0 != flags&percentBit,
		Output:  uint16(flags & outputMask),
	}

	if payment.Range {
		low, err := r.TakeByte()
		if nil != err {
			return Payment{}, err
		}
		payment.Output = payment.Output<<8 | uint16(low)
	}

	amount, _, err := sffc.Decode(r)
	if nil != err {
		return Payment{}, err
	}
	payment.Amount = amount
	return payment, nil
}

// DecodeBulk - read payments until the cursor is exhausted
//
// a partial entry at the end is an error
func DecodeBulk(r *cursor.Reader) ([]Payment, error) {
	payments := make([]Payment, 0)
	for r.Remaining() > 0 {
		p, err := Decode(r)
		if nil != err {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}
