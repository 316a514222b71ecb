// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuance

import (
	"encoding/binary"

	"github.com/bitmark-inc/issuance/digest"
	"github.com/bitmark-inc/issuance/fault"
)

// byte sizes of the fixed fields
const (
	protocolLength = 2
	versionLength  = 1
	headerLength   = protocolLength + versionLength
	opcodeLength   = 1
	flagsLength    = 1
)

// Encode - pack a record into at most byteSizeLimit bytes
//
// Structure of the code buffer
//   protocol(2) version(1) opcode(1) hashes(0|20|52) amount(sffc) payments flags(1)
//
// when a sha2 is present the hashes are embedded greedily: the torrent
// hash first if it fits, then the sha2 only if the torrent hash was
// embedded.  Anything not embedded is returned as leftover in the
// order torrent hash, sha2 for the caller to carry elsewhere
func (codec *Codec) Encode(record *Record, byteSizeLimit int) (*Encoded, error) {
	if nil == record {
		return nil, fault.ErrMissingRecord
	}
	if nil == record.AmountOfUnits {
		return nil, fault.ErrMissingAmountOfUnits
	}
	if nil == record.LockStatus {
		return nil, fault.ErrMissingLockStatus
	}
	if nil == record.Divisibility {
		return nil, fault.ErrMissingDivisibility
	}
	if nil == record.Protocol {
		return nil, fault.ErrMissingProtocol
	}
	if nil == record.Version {
		return nil, fault.ErrMissingVersion
	}

	header := make([]byte, headerLength)
	binary.BigEndian.PutUint16(header, *record.Protocol)
	header[protocolLength] = *record.Version

	amount, err := codec.amount().Encode(*record.AmountOfUnits)
	if nil != err {
		return nil, err
	}
	payments, err := codec.payments().EncodeBulk(record.Payments)
	if nil != err {
		return nil, err
	}
	flags, err := codec.flags().Encode(*record.Divisibility, *record.LockStatus)
	if nil != err {
		return nil, err
	}

	tail := make([]byte, 0, len(amount)+len(payments)+flagsLength)
	tail = append(tail, amount...)
	tail = append(tail, payments...)
	tail = append(tail, flags)

	byteSize := len(header) + len(tail) + opcodeLength
	if byteSize > byteSizeLimit {
		return nil, fault.ErrDataExceedsByteSize
	}

	opcode := OpcodeReserved
	hashes := []byte{}
	leftover := []digest.Hash{}

	if nil == record.SHA2 {
		switch {
		case nil != record.TorrentHash:
			if byteSize+digest.TorrentLength > byteSizeLimit {
				return nil, fault.ErrCannotFitTorrentHash
			}
			opcode = OpcodeTorrentOnly
			hashes = append(hashes, record.TorrentHash[:]...)
		case record.AllowMeta:
			opcode = OpcodeMetaAllowed
		default:
			opcode = OpcodeNoMetaAllowed
		}
	} else {
		if nil == record.TorrentHash {
			return nil, fault.ErrMissingTorrentHash
		}

		// nothing fits until proven otherwise
		opcode = OpcodeBothExternal
		leftover = append(leftover, record.TorrentHash.Bytes(), record.SHA2.Bytes())

		// sha2 is only considered once the torrent hash is in
		byteSize += digest.TorrentLength
		if byteSize <= byteSizeLimit {
			hashes = append(hashes, leftover[0]...)
			leftover = leftover[1:]
			opcode = OpcodeTorrentEmbedded

			byteSize += digest.SHA2Length
			if byteSize <= byteSizeLimit {
				hashes = append(hashes, leftover[0]...)
				leftover = leftover[1:]
				opcode = OpcodeBothEmbedded
			}
		}
	}

	codeBuffer := make(Packed, 0, len(header)+opcodeLength+len(hashes)+len(tail))
	codeBuffer = append(codeBuffer, header...)
	codeBuffer = append(codeBuffer, byte(opcode))
	codeBuffer = append(codeBuffer, hashes...)
	codeBuffer = append(codeBuffer, tail...)

	codec.debugf("encode: opcode: %s  size: %d  limit: %d  leftover: %d", opcode, len(codeBuffer), byteSizeLimit, len(leftover))

	return &Encoded{
		CodeBuffer: codeBuffer,
		Leftover:   leftover,
		Opcode:     opcode,
	}, nil
}
