// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issuance_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/issuance/digest"
	"github.com/bitmark-inc/issuance/fault"
	"github.com/bitmark-inc/issuance/issuance"
	"github.com/bitmark-inc/issuance/payment"
)

// no hashes, no meta allowed
func TestEncodeNoMetaAllowed(t *testing.T) {
	r := newTestRecord()

	expected := []byte{
		0x00, 0x01, 0x01, 0x05, 0x20, 0x12, 0x40,
	}

	encoded, err := newCodec().Encode(r, 100)
	if nil != err {
		t.Fatalf("encode error: %s", err)
	}

	if !bytes.Equal(encoded.CodeBuffer, expected) {
		t.Errorf("code buffer: %x  expected: %x", encoded.CodeBuffer, expected)
		t.Errorf("*** GENERATED code buffer:\n%s", formatBytes("expected", encoded.CodeBuffer))
	}
	assert.Equal(t, issuance.OpcodeNoMetaAllowed, encoded.Opcode, "wrong opcode")
	assert.Equal(t, 0, len(encoded.Leftover), "wrong leftover")
	assert.NotNil(t, encoded.Leftover, "leftover must be an empty list")
}

func TestEncodeMetaAllowed(t *testing.T) {
	r := newTestRecord()
	r.AllowMeta = true

	encoded, err := newCodec().Encode(r, baseSize)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, issuance.OpcodeMetaAllowed, encoded.Opcode, "wrong opcode")
	assert.Equal(t, issuance.Packed{0x00, 0x01, 0x01, 0x06, 0x20, 0x12, 0x40}, encoded.CodeBuffer, "wrong code buffer")
	assert.Equal(t, 0, len(encoded.Leftover), "wrong leftover")
}

// allow meta is ignored once a hash is present
func TestEncodeTorrentOnly(t *testing.T) {
	r := newTestRecord()
	r.TorrentHash = testTorrent()
	r.AllowMeta = true

	expected := []byte{
		0x00, 0x01, 0x01, 0x04, 0xa0, 0xa1, 0xa2, 0xa3,
		0xa4, 0xa5, 0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xab,
		0xac, 0xad, 0xae, 0xaf, 0xb0, 0xb1, 0xb2, 0xb3,
		0x20, 0x12, 0x40,
	}

	encoded, err := newCodec().Encode(r, baseSize+digest.TorrentLength)
	if nil != err {
		t.Fatalf("encode error: %s", err)
	}
	if !bytes.Equal(encoded.CodeBuffer, expected) {
		t.Errorf("code buffer: %x  expected: %x", encoded.CodeBuffer, expected)
		t.Errorf("*** GENERATED code buffer:\n%s", formatBytes("expected", encoded.CodeBuffer))
	}
	assert.Equal(t, issuance.OpcodeTorrentOnly, encoded.Opcode, "wrong opcode")
	assert.Equal(t, 0, len(encoded.Leftover), "wrong leftover")
}

// without a sha2 the torrent hash is never moved to leftover
func TestEncodeTorrentOnlyDoesNotFit(t *testing.T) {
	r := newTestRecord()
	r.TorrentHash = testTorrent()

	encoded, err := newCodec().Encode(r, baseSize+digest.TorrentLength-1)
	assert.Equal(t, fault.ErrCannotFitTorrentHash, err, "wrong error")
	assert.True(t, fault.IsErrBudgetExceeded(err), "wrong error class")
	assert.Nil(t, encoded, "partial result")
}

func TestEncodeBothEmbedded(t *testing.T) {
	r := newTestRecord()
	r.TorrentHash = testTorrent()
	r.SHA2 = testSHA2()

	expected := []byte{
		0x00, 0x01, 0x01, 0x01, 0xa0, 0xa1, 0xa2, 0xa3,
		0xa4, 0xa5, 0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xab,
		0xac, 0xad, 0xae, 0xaf, 0xb0, 0xb1, 0xb2, 0xb3,
		0x50, 0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57,
		0x58, 0x59, 0x5a, 0x5b, 0x5c, 0x5d, 0x5e, 0x5f,
		0x60, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66, 0x67,
		0x68, 0x69, 0x6a, 0x6b, 0x6c, 0x6d, 0x6e, 0x6f,
		0x20, 0x12, 0x40,
	}

	encoded, err := newCodec().Encode(r, 100)
	if nil != err {
		t.Fatalf("encode error: %s", err)
	}
	if !bytes.Equal(encoded.CodeBuffer, expected) {
		t.Errorf("code buffer: %x  expected: %x", encoded.CodeBuffer, expected)
		t.Errorf("*** GENERATED code buffer:\n%s", formatBytes("expected", encoded.CodeBuffer))
	}
	assert.Equal(t, issuance.OpcodeBothEmbedded, encoded.Opcode, "wrong opcode")
	assert.Equal(t, 0, len(encoded.Leftover), "wrong leftover")
}

// limit exactly fits the torrent hash
func TestEncodeTorrentEmbedded(t *testing.T) {
	r := newTestRecord()
	r.TorrentHash = testTorrent()
	r.SHA2 = testSHA2()

	encoded, err := newCodec().Encode(r, baseSize+digest.TorrentLength)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, issuance.OpcodeTorrentEmbedded, encoded.Opcode, "wrong opcode")
	assert.Equal(t, baseSize+digest.TorrentLength, len(encoded.CodeBuffer), "wrong size")
	assert.Equal(t, []digest.Hash{testSHA2().Bytes()}, encoded.Leftover, "wrong leftover")
	assert.Equal(t, byte(issuance.OpcodeTorrentEmbedded), encoded.CodeBuffer[3], "wrong opcode byte")
	assert.Equal(t, testTorrent().Bytes(), []byte(encoded.CodeBuffer[4:4+digest.TorrentLength]), "wrong embedded hash")
}

func TestEncodeBothExternal(t *testing.T) {
	r := newTestRecord()
	r.TorrentHash = testTorrent()
	r.SHA2 = testSHA2()

	encoded, err := newCodec().Encode(r, baseSize+digest.TorrentLength-1)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, issuance.OpcodeBothExternal, encoded.Opcode, "wrong opcode")
	assert.Equal(t, issuance.Packed{0x00, 0x01, 0x01, 0x03, 0x20, 0x12, 0x40}, encoded.CodeBuffer, "wrong code buffer")
	assert.Equal(t, []digest.Hash{testTorrent().Bytes(), testSHA2().Bytes()}, encoded.Leftover, "wrong leftover")
}

func TestEncodeBaseExceedsLimit(t *testing.T) {
	r := newTestRecord()

	encoded, err := newCodec().Encode(r, baseSize-1)
	assert.Equal(t, fault.ErrDataExceedsByteSize, err, "wrong error")
	assert.True(t, fault.IsErrBudgetExceeded(err), "wrong error class")
	assert.Nil(t, encoded, "partial result")

	// hashes do not change the minimal layout check
	r.TorrentHash = testTorrent()
	r.SHA2 = testSHA2()
	_, err = newCodec().Encode(r, baseSize-1)
	assert.Equal(t, fault.ErrDataExceedsByteSize, err, "wrong error with hashes")
}

func TestEncodeSHA2WithoutTorrent(t *testing.T) {
	r := newTestRecord()
	r.SHA2 = testSHA2()

	encoded, err := newCodec().Encode(r, 100)
	assert.Equal(t, fault.ErrMissingTorrentHash, err, "wrong error")
	assert.True(t, fault.IsErrMissingHash(err), "wrong error class")
	assert.Nil(t, encoded, "partial result")
}

func TestEncodeMissingFields(t *testing.T) {
	missingTests := []struct {
		clear func(r *issuance.Record)
		err   error
	}{
		{func(r *issuance.Record) { r.AmountOfUnits = nil }, fault.ErrMissingAmountOfUnits},
		{func(r *issuance.Record) { r.LockStatus = nil }, fault.ErrMissingLockStatus},
		{func(r *issuance.Record) { r.Divisibility = nil }, fault.ErrMissingDivisibility},
		{func(r *issuance.Record) { r.Protocol = nil }, fault.ErrMissingProtocol},
		{func(r *issuance.Record) { r.Version = nil }, fault.ErrMissingVersion},
	}

	for i, item := range missingTests {
		r := newTestRecord()
		item.clear(r)
		_, err := newCodec().Encode(r, 100)
		if item.err != err {
			t.Errorf("%d: error: %v  expected: %v", i, err, item.err)
		}
		if !fault.IsErrMissingField(err) {
			t.Errorf("%d: error: %v is not a missing field error", i, err)
		}
	}

	_, err := newCodec().Encode(nil, 100)
	assert.Equal(t, fault.ErrMissingRecord, err, "nil record")
}

// zero values are present values
func TestEncodeZeroFields(t *testing.T) {
	r := issuance.NewRecord(0, 0, 0, 0, false)

	encoded, err := newCodec().Encode(r, 6)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, issuance.Packed{0x00, 0x00, 0x00, 0x05, 0x00, 0x00}, encoded.CodeBuffer, "wrong code buffer")
}

func TestEncodeWithPayments(t *testing.T) {
	r := newTestRecord()
	r.Payments = []payment.Payment{
		{Output: 1, Amount: 100},
		{Skip: true, Output: 31, Amount: 5},
	}

	expected := []byte{
		0x00, 0x01, 0x01, 0x05, 0x20, 0x12, 0x01, 0x20,
		0x12, 0x9f, 0x05, 0x40,
	}

	encoded, err := newCodec().Encode(r, len(expected))
	if nil != err {
		t.Fatalf("encode error: %s", err)
	}
	if !bytes.Equal(encoded.CodeBuffer, expected) {
		t.Errorf("code buffer: %x  expected: %x", encoded.CodeBuffer, expected)
		t.Errorf("*** GENERATED code buffer:\n%s", formatBytes("expected", encoded.CodeBuffer))
	}

	// payments count towards the minimal layout
	_, err = newCodec().Encode(r, len(expected)-1)
	assert.Equal(t, fault.ErrDataExceedsByteSize, err, "wrong error")
}

func TestEncodeCollaboratorErrors(t *testing.T) {
	r := newTestRecord()
	divisibility := uint8(8)
	r.Divisibility = &divisibility
	_, err := newCodec().Encode(r, 100)
	assert.Equal(t, fault.ErrDivisibilityOutOfRange, err, "flag error")

	r = newTestRecord()
	amount := uint64(9007199254740993)
	r.AmountOfUnits = &amount
	_, err = newCodec().Encode(r, 100)
	assert.Equal(t, fault.ErrAmountNotRepresentable, err, "amount error")

	r = newTestRecord()
	r.Payments = []payment.Payment{{Output: 32}}
	_, err = newCodec().Encode(r, 100)
	assert.Equal(t, fault.ErrPaymentOutputOutOfBounds, err, "payment error")
}

// the package level functions use the default collaborators
func TestEncodeDefaultCodec(t *testing.T) {
	r := newTestRecord()

	encoded, err := issuance.Encode(r, 100)
	assert.Nil(t, err, "wrong error")

	zero := &issuance.Codec{}
	other, err := zero.Encode(r, 100)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, encoded, other, "zero codec differs from default")
}

func TestEncodedJSON(t *testing.T) {
	r := newTestRecord()
	r.TorrentHash = testTorrent()
	r.SHA2 = testSHA2()

	encoded, err := newCodec().Encode(r, baseSize+digest.TorrentLength)
	assert.Nil(t, err, "wrong error")

	b, err := json.Marshal(encoded)
	assert.Nil(t, err, "wrong error")

	expected := `{"codeBuffer":"0001010` +
		`2a0a1a2a3a4a5a6a7a8a9aaabacadaeafb0b1b2b3` +
		`201240","leftover":["` + testSHA2().String() + `"],"opcode":"TorrentEmbedded"}`
	assert.Equal(t, expected, string(b), "wrong JSON")

	var recovered issuance.Encoded
	err = json.Unmarshal(b, &recovered)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, *encoded, recovered, "wrong recovered value")
}
