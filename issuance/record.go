// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuance

import (
	"github.com/bitmark-inc/issuance/digest"
	"github.com/bitmark-inc/issuance/payment"
)

// Record - the unpacked issuance
//
// the mandatory fields are pointers so that a missing value can be
// distinguished from zero
type Record struct {
	Protocol      *uint16           `json:"protocol"`              // 2 bytes big endian
	Version       *uint8            `json:"version"`               // 1 byte
	AmountOfUnits *uint64           `json:"amountOfUnits"`         // sffc
	Divisibility  *uint8            `json:"divisibility"`          // 0..7, flag byte
	LockStatus    *bool             `json:"lockStatus"`            // flag byte
	TorrentHash   *digest.Torrent   `json:"torrentHash,omitempty"` // hex
	SHA2          *digest.SHA2      `json:"sha2,omitempty"`        // hex: requires TorrentHash
	AllowMeta     bool              `json:"allowMeta"`             // only used when no hashes
	Payments      []payment.Payment `json:"payments,omitempty"`
}

// Encoded - result of encoding a record
type Encoded struct {
	CodeBuffer Packed        `json:"codeBuffer"`
	Leftover   []digest.Hash `json:"leftover"` // torrent hash before sha2
	Opcode     Opcode        `json:"opcode"`
}

// NewRecord - a record with all mandatory fields set
func NewRecord(protocol uint16, version uint8, amountOfUnits uint64, divisibility uint8, lockStatus bool) *Record {
	return &Record{
		Protocol:      &protocol,
		Version:       &version,
		AmountOfUnits: &amountOfUnits,
		Divisibility:  &divisibility,
		LockStatus:    &lockStatus,
	}
}
