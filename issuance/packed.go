// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuance

import (
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/issuance/fault"
)

// Packed - packed issuances are just a byte slice
type Packed []byte

// text forms accepted for a packed issuance
const (
	EncodingHex    = "hex"
	EncodingBase58 = "base58"
)

// ParsePacked - convert text in the given encoding to a packed issuance
func ParsePacked(text string, encoding string) (Packed, error) {
	text = strings.TrimSpace(text)
	switch strings.ToLower(encoding) {
	case EncodingHex, "":
		b, err := hex.DecodeString(text)
		if nil != err {
			return nil, fault.ErrInvalidPackedText
		}
		return b, nil
	case EncodingBase58:
		if "" == text {
			return Packed{}, nil
		}
		b, err := base58.Decode(text)
		if nil != err {
			return nil, fault.ErrInvalidPackedText
		}
		return b, nil
	default:
		return nil, fault.ErrInvalidTextEncoding
	}
}

// Text - convert a packed issuance to text in the given encoding
func (record Packed) Text(encoding string) (string, error) {
	switch strings.ToLower(encoding) {
	case EncodingHex, "":
		return hex.EncodeToString(record), nil
	case EncodingBase58:
		return base58.Encode(record), nil
	default:
		return "", fault.ErrInvalidTextEncoding
	}
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	buffer := make([]byte, size)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrInvalidPackedText
	}
	*record = buffer
	return nil
}
