// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/issuance/fault"
)

// number of bytes in each kind of hash
const (
	TorrentLength = 20
	SHA2Length    = 32
)

// Torrent - identifier of the off-band metadata (torrent info hash)
// stored and printed in natural byte order
type Torrent [TorrentLength]byte

// SHA2 - SHA-256 digest of the off-band metadata
type SHA2 [SHA2Length]byte

// Hash - a hash of either kind as carried in a leftover list
type Hash []byte

// TorrentFromBytes - copy a byte slice into a torrent hash
func TorrentFromBytes(t *Torrent, buffer []byte) error {
	if TorrentLength != len(buffer) {
		return fault.ErrInvalidHashLength
	}
	copy(t[:], buffer)
	return nil
}

// SHA2FromBytes - copy a byte slice into a sha2 digest
func SHA2FromBytes(s *SHA2, buffer []byte) error {
	if SHA2Length != len(buffer) {
		return fault.ErrInvalidHashLength
	}
	copy(s[:], buffer)
	return nil
}

// ParseTorrent - convert hex or base58 text to a torrent hash
func ParseTorrent(s string) (Torrent, error) {
	var t Torrent
	buffer, err := parseText(s, TorrentLength)
	if nil != err {
		return t, err
	}
	copy(t[:], buffer)
	return t, nil
}

// ParseSHA2 - convert hex or base58 text to a sha2 digest
func ParseSHA2(s string) (SHA2, error) {
	var d SHA2
	buffer, err := parseText(s, SHA2Length)
	if nil != err {
		return d, err
	}
	copy(d[:], buffer)
	return d, nil
}

// Bytes - the hash as a slice
func (t Torrent) Bytes() []byte { return append([]byte{}, t[:]...) }
func (d SHA2) Bytes() []byte    { return append([]byte{}, d[:]...) }

// String - hex form for the fmt package (for %s)
func (t Torrent) String() string { return hex.EncodeToString(t[:]) }
func (d SHA2) String() string    { return hex.EncodeToString(d[:]) }
func (h Hash) String() string    { return hex.EncodeToString(h) }

// GoString - tagged hex form for the fmt package (for %#v)
func (t Torrent) GoString() string { return "<Torrent:" + t.String() + ">" }
func (d SHA2) GoString() string    { return "<SHA2:" + d.String() + ">" }

// MarshalText - convert to hex JSON form
func (t Torrent) MarshalText() ([]byte, error) { return marshalText(t[:]) }
func (d SHA2) MarshalText() ([]byte, error)    { return marshalText(d[:]) }
func (h Hash) MarshalText() ([]byte, error)    { return marshalText(h) }

// UnmarshalText - convert from hex JSON form
func (t *Torrent) UnmarshalText(s []byte) error { return unmarshalText(t[:], s) }
func (d *SHA2) UnmarshalText(s []byte) error    { return unmarshalText(d[:], s) }

// UnmarshalText - a leftover hash may be of either length
func (h *Hash) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if TorrentLength != byteCount && SHA2Length != byteCount {
		return fault.ErrInvalidHashLength
	}
	*h = buffer[:byteCount]
	return nil
}

// Scan - convert hex text for the fmt package scan routines
func (t *Torrent) Scan(state fmt.ScanState, verb rune) error { return scanHex(state, t[:]) }
func (d *SHA2) Scan(state fmt.ScanState, verb rune) error    { return scanHex(state, d[:]) }

func marshalText(buffer []byte) ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(buffer)))
	hex.Encode(b, buffer)
	return b, nil
}

func unmarshalText(destination []byte, s []byte) error {
	if len(s) != hex.EncodedLen(len(destination)) {
		return fault.ErrInvalidHashLength
	}
	_, err := hex.Decode(destination, s)
	return err
}

func scanHex(state fmt.ScanState, destination []byte) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return unmarshalText(destination, token)
}

// hex is tried first since a hex string of the right length is
// very often also valid base58
func parseText(s string, length int) ([]byte, error) {
	if len(s) == hex.EncodedLen(length) {
		if buffer, err := hex.DecodeString(s); nil == err {
			return buffer, nil
		}
	}
	buffer, err := base58.Decode(s)
	if nil != err || 0 == len(s) {
		return nil, fault.ErrInvalidHashText
	}
	if length != len(buffer) {
		return nil, fault.ErrInvalidHashLength
	}
	return buffer, nil
}
