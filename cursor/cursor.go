// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cursor

import (
	"github.com/bitmark-inc/issuance/fault"
)

// Reader - forward only cursor over a byte slice
//
// the returned slices share the underlying array of the buffer so
// callers that keep them must copy
type Reader struct {
	buffer []byte
	offset int
}

// New - create a reader positioned at the start of buffer
func New(buffer []byte) *Reader {
	return &Reader{
		buffer: buffer,
	}
}

// Take - the next n bytes, advancing the cursor
//
// a short buffer is an error and leaves the cursor unchanged
func (r *Reader) Take(n int) ([]byte, error) {
	if n < 0 {
		return nil, fault.ErrNegativeTake
	}
	if n > r.Remaining() {
		return nil, fault.ErrTruncatedBuffer
	}
	start := r.offset
	r.offset += n
	return r.buffer[start:r.offset:r.offset], nil
}

// TakeByte - the next single byte
func (r *Reader) TakeByte() (byte, error) {
	if 0 == r.Remaining() {
		return 0, fault.ErrTruncatedBuffer
	}
	b := r.buffer[r.offset]
	r.offset += 1
	return b, nil
}

// Remaining - count of bytes not yet taken
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.offset
}

// Consumed - count of bytes already taken
func (r *Reader) Consumed() int {
	return r.offset
}
