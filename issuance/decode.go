// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuance

import (
	"encoding/binary"

	"github.com/bitmark-inc/issuance/cursor"
	"github.com/bitmark-inc/issuance/digest"
	"github.com/bitmark-inc/issuance/fault"
)

// header, opcode, at least one amount byte and the flags
const minimumPackedLength = headerLength + opcodeLength + 1 + flagsLength

// ReadOpcode - the discriminator of a packed issuance without
// decoding the remainder
func ReadOpcode(buffer Packed) (Opcode, error) {
	if len(buffer) < headerLength+opcodeLength {
		return OpcodeReserved, fault.ErrPackedTooShort
	}
	return OpcodeFromByte(buffer[headerLength])
}

// DecodeText - decode a packed issuance supplied as hex or base58 text
func (codec *Codec) DecodeText(text string, encoding string) (*Record, error) {
	buffer, err := ParsePacked(text, encoding)
	if nil != err {
		return nil, err
	}
	return codec.Decode(buffer)
}

// Decode - turn a packed issuance back into a record
//
// the final byte holds the flags; everything before it is read
// forwards: header, opcode, the hashes the opcode calls for, amount
// and then payments up to the flag byte
//
// OpcodeTorrentOnly is followed by a 20 byte torrent hash exactly as
// the encoder writes it
func (codec *Codec) Decode(buffer Packed) (*Record, error) {
	if len(buffer) < minimumPackedLength {
		return nil, fault.ErrPackedTooShort
	}

	last := len(buffer) - flagsLength
	divisibility, lockStatus, err := codec.flags().Decode(cursor.New(buffer[last:]))
	if nil != err {
		return nil, err
	}

	r := cursor.New(buffer[:last])

	header, err := r.Take(headerLength)
	if nil != err {
		return nil, err
	}
	protocol := binary.BigEndian.Uint16(header[:protocolLength])
	version := header[protocolLength]

	b, err := r.TakeByte()
	if nil != err {
		return nil, err
	}
	opcode, err := OpcodeFromByte(b)
	if nil != err {
		return nil, err
	}

	record := &Record{
		Protocol:     &protocol,
		Version:      &version,
		Divisibility: &divisibility,
		LockStatus:   &lockStatus,
	}

	switch opcode {
	case OpcodeBothEmbedded:
		if record.TorrentHash, err = takeTorrent(r); nil != err {
			return nil, err
		}
		if record.SHA2, err = takeSHA2(r); nil != err {
			return nil, err
		}
	case OpcodeTorrentEmbedded, OpcodeTorrentOnly:
		if record.TorrentHash, err = takeTorrent(r); nil != err {
			return nil, err
		}
	case OpcodeBothExternal:
		// caller supplies both hashes
	case OpcodeNoMetaAllowed:
		record.AllowMeta = false
	case OpcodeMetaAllowed:
		record.AllowMeta = true
	default:
		return nil, fault.ErrUnrecognizedOpcode
	}

	amount, _, err := codec.amount().Decode(r)
	if nil != err {
		return nil, err
	}
	record.AmountOfUnits = &amount

	payments, err := codec.payments().DecodeBulk(r)
	if nil != err {
		return nil, err
	}
	record.Payments = payments

	codec.debugf("decode: opcode: %s  size: %d  payments: %d", opcode, len(buffer), len(payments))

	return record, nil
}

func takeTorrent(r *cursor.Reader) (*digest.Torrent, error) {
	b, err := r.Take(digest.TorrentLength)
	if nil != err {
		return nil, err
	}
	t := &digest.Torrent{}
	if err := digest.TorrentFromBytes(t, b); nil != err {
		return nil, err
	}
	return t, nil
}

func takeSHA2(r *cursor.Reader) (*digest.SHA2, error) {
	b, err := r.Take(digest.SHA2Length)
	if nil != err {
		return nil, err
	}
	s := &digest.SHA2{}
	if err := digest.SHA2FromBytes(s, b); nil != err {
		return nil, err
	}
	return s, nil
}
