// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sffc

import (
	"math/bits"

	"github.com/bitmark-inc/issuance/cursor"
	"github.com/bitmark-inc/issuance/fault"
)

// MaximumBytes - longest possible encoding
const MaximumBytes = 7

// top three bits of the first byte select the scheme
const flagMask = 0xe0

type scheme struct {
	flag         byte
	byteCount    int
	mantissaBits uint
	exponentBits uint
}

// in increasing size order, the encoder takes the first that fits
//
// Structure of the payload following the flag bits (big endian)
//   mantissa | exponent
// and the value is mantissa × 10^exponent
var schemes = []scheme{
	{flag: 0x00, byteCount: 1, mantissaBits: 5, exponentBits: 0},
	{flag: 0x20, byteCount: 2, mantissaBits: 9, exponentBits: 4},
	{flag: 0x40, byteCount: 3, mantissaBits: 17, exponentBits: 4},
	{flag: 0x60, byteCount: 4, mantissaBits: 25, exponentBits: 4},
	{flag: 0x80, byteCount: 5, mantissaBits: 34, exponentBits: 3},
	{flag: 0xa0, byteCount: 6, mantissaBits: 42, exponentBits: 3},
	{flag: 0xc0, byteCount: 7, mantissaBits: 53, exponentBits: 0},
}

var powersOfTen = [16]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
}

// Encode - convert an amount to its shortest exact encoding
//
// values that need more than 53 significant bits after removing
// trailing decimal zeros cannot be represented
func Encode(value uint64) ([]byte, error) {
	trailingZeros := 0
	for m := value; 0 != m && 0 == m%10; m /= 10 {
		trailingZeros += 1
	}

	for _, s := range schemes {
		exponent := trailingZeros
		if maximum := 1<<s.exponentBits - 1; exponent > maximum {
			exponent = maximum
		}
		mantissa := value / powersOfTen[exponent]
		if mantissa >= 1<<s.mantissaBits {
			continue
		}

		payload := mantissa<<s.exponentBits | uint64(exponent)
		result := make([]byte, s.byteCount)
		for i := s.byteCount - 1; i >= 0; i -= 1 {
			result[i] = byte(payload)
			payload >>= 8
		}
		result[0] |= s.flag
		return result, nil
	}
	return nil, fault.ErrAmountNotRepresentable
}

// Decode - read one amount from the cursor
//
// also returns the number of bytes consumed
func Decode(r *cursor.Reader) (uint64, int, error) {
	start := r.Consumed()

	first, err := r.TakeByte()
	if nil != err {
		return 0, 0, err
	}

	s, ok := lookup(first & flagMask)
	if !ok {
		return 0, 0, fault.ErrInvalidAmountEncoding
	}

	rest, err := r.Take(s.byteCount - 1)
	if nil != err {
		return 0, 0, err
	}

	payload := uint64(first &^ flagMask)
	for _, b := range rest {
		payload = payload<<8 | uint64(b)
	}

	exponent := payload & (1<<s.exponentBits - 1)
	mantissa := payload >> s.exponentBits

	high, value := bits.Mul64(mantissa, powersOfTen[exponent])
	if 0 != high {
		return 0, 0, fault.ErrAmountOverflow
	}
	return value, r.Consumed() - start, nil
}

func lookup(flag byte) (scheme, bool) {
	for _, s := range schemes {
		if s.flag == flag {
			return s, true
		}
	}
	return scheme{}, false
}
