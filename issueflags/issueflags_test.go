// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package issueflags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/issuance/cursor"
	"github.com/bitmark-inc/issuance/fault"
	"github.com/bitmark-inc/issuance/issueflags"
)

var flagTests = []struct {
	divisibility uint8
	lockStatus   bool
	encoded      byte
}{
	{0, false, 0x00},
	{0, true, 0x10},
	{2, false, 0x40},
	{2, true, 0x50},
	{7, false, 0xe0},
	{7, true, 0xf0},
}

func TestEncode(t *testing.T) {
	for i, item := range flagTests {
		b, err := issueflags.Encode(item.divisibility, item.lockStatus)
		if nil != err {
			t.Errorf("%d: Encode(%d, %v) error: %s", i, item.divisibility, item.lockStatus, err)
			continue
		}
		if b != item.encoded {
			t.Errorf("%d: Encode(%d, %v) -> %02x  expected: %02x", i, item.divisibility, item.lockStatus, b, item.encoded)
		}
	}
}

func TestDecode(t *testing.T) {
	for i, item := range flagTests {
		r := cursor.New([]byte{item.encoded})
		divisibility, lockStatus, err := issueflags.Decode(r)
		if nil != err {
			t.Errorf("%d: Decode(%02x) error: %s", i, item.encoded, err)
			continue
		}
		if divisibility != item.divisibility || lockStatus != item.lockStatus {
			t.Errorf("%d: Decode(%02x) -> %d, %v  expected: %d, %v", i, item.encoded, divisibility, lockStatus, item.divisibility, item.lockStatus)
		}
		if 0 != r.Remaining() {
			t.Errorf("%d: remaining: %d", i, r.Remaining())
		}
	}
}

func TestEncodeDivisibilityOutOfRange(t *testing.T) {
	_, err := issueflags.Encode(issueflags.MaximumDivisibility+1, false)
	assert.Equal(t, fault.ErrDivisibilityOutOfRange, err, "wrong error")
}

func TestDecodeIgnoresReservedBits(t *testing.T) {
	divisibility, lockStatus, err := issueflags.Decode(cursor.New([]byte{0x5f}))
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, uint8(2), divisibility, "wrong divisibility")
	assert.True(t, lockStatus, "wrong lock status")
}

func TestDecodeEmpty(t *testing.T) {
	_, _, err := issueflags.Decode(cursor.New(nil))
	assert.Equal(t, fault.ErrTruncatedBuffer, err, "wrong error")
}
