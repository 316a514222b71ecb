// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuance

import (
	"fmt"

	"github.com/bitmark-inc/issuance/digest"
	"github.com/bitmark-inc/issuance/fault"
)

// Opcode - discriminator byte that follows the issuance header
type Opcode byte

// enumerate the possible opcodes
// the byte values are fixed by the wire format
const (
	OpcodeReserved        = Opcode(0x00) // wild card, not yet defined
	OpcodeBothEmbedded    = Opcode(0x01) // torrent hash and sha2 both in the code buffer
	OpcodeTorrentEmbedded = Opcode(0x02) // torrent hash in the code buffer, sha2 carried elsewhere
	OpcodeBothExternal    = Opcode(0x03) // torrent hash and sha2 both carried elsewhere
	OpcodeTorrentOnly     = Opcode(0x04) // low security: torrent hash in the code buffer, no sha2
	OpcodeNoMetaAllowed   = Opcode(0x05) // no hashes, rules and metadata may not be amended
	OpcodeMetaAllowed     = Opcode(0x06) // no hashes, rules and metadata may be added later
)

// Opcodes - all meaningful opcodes in byte order
func Opcodes() []Opcode {
	return []Opcode{
		OpcodeBothEmbedded,
		OpcodeTorrentEmbedded,
		OpcodeBothExternal,
		OpcodeTorrentOnly,
		OpcodeNoMetaAllowed,
		OpcodeMetaAllowed,
	}
}

// OpcodeFromByte - validate a discriminator byte
func OpcodeFromByte(b byte) (Opcode, error) {
	switch opcode := Opcode(b); opcode {
	case OpcodeBothEmbedded,
		OpcodeTorrentEmbedded,
		OpcodeBothExternal,
		OpcodeTorrentOnly,
		OpcodeNoMetaAllowed,
		OpcodeMetaAllowed:
		return opcode, nil
	case OpcodeReserved:
		return OpcodeReserved, fault.ErrReservedOpcode
	default:
		return OpcodeReserved, fault.ErrUnrecognizedOpcode
	}
}

// IsValid - true for the six meaningful opcodes
func (opcode Opcode) IsValid() bool {
	_, err := OpcodeFromByte(byte(opcode))
	return nil == err
}

// EmbeddedHashLength - number of hash bytes that follow the opcode
func (opcode Opcode) EmbeddedHashLength() int {
	switch opcode {
	case OpcodeBothEmbedded:
		return digest.TorrentLength + digest.SHA2Length
	case OpcodeTorrentEmbedded, OpcodeTorrentOnly:
		return digest.TorrentLength
	default:
		return 0
	}
}

// String - name of the opcode
func (opcode Opcode) String() string {
	switch opcode {
	case OpcodeReserved:
		return "Reserved"
	case OpcodeBothEmbedded:
		return "BothEmbedded"
	case OpcodeTorrentEmbedded:
		return "TorrentEmbedded"
	case OpcodeBothExternal:
		return "BothExternal"
	case OpcodeTorrentOnly:
		return "TorrentOnly"
	case OpcodeNoMetaAllowed:
		return "NoMetaAllowed"
	case OpcodeMetaAllowed:
		return "MetaAllowed"
	default:
		return "*unknown*"
	}
}

// GoString - value and name, for debugging
func (opcode Opcode) GoString() string {
	return fmt.Sprintf("<Opcode#0x%02x:%s>", byte(opcode), opcode.String())
}

// MarshalText - opcodes appear by name in JSON
func (opcode Opcode) MarshalText() ([]byte, error) {
	return []byte(opcode.String()), nil
}

// UnmarshalText - convert an opcode name back to an opcode
func (opcode *Opcode) UnmarshalText(s []byte) error {
	for _, o := range Opcodes() {
		if o.String() == string(s) {
			*opcode = o
			return nil
		}
	}
	return fault.ErrUnrecognizedOpcode
}
