// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package issueflags - the single trailing byte of an issuance
//
// Structure of the byte
//   D2 | D1 | D0 | L | R | R | R | R
// D = divisibility 0..7, L = lock status, R = reserved (zero)
package issueflags

import (
	"github.com/bitmark-inc/issuance/cursor"
	"github.com/bitmark-inc/issuance/fault"
)

// MaximumDivisibility - largest value that fits the three bits
const MaximumDivisibility = 7

const (
	divisibilityShift = 5
	lockStatusBit     = 0x10
)

// Encode - pack divisibility and lock status into one byte
func Encode(divisibility uint8, lockStatus bool) (byte, error) {
	if divisibility > MaximumDivisibility {
		return 0, fault.ErrDivisibilityOutOfRange
	}
	b := divisibility << divisibilityShift
	if lockStatus {
		b |= lockStatusBit
	}
	return b, nil
}

// Decode - read the flag byte from the cursor
//
// reserved bits are ignored
func Decode(r *cursor.Reader) (uint8, bool, error) {
	b, err := r.TakeByte()
	if nil != err {
		return 0, false, err
	}
	return b >> divisibilityShift, 0 != b&lockStatusBit, nil
}
