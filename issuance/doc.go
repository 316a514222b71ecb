// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package issuance - pack an asset issuance into a size limited slot
//
// An issuance is packed as
//
//   protocol(2) version(1) opcode(1) hashes amount payments flags(1)
//
// The opcode records which of the metadata hashes were embedded.  The
// encoder picks the richest opcode that keeps the code buffer within
// the caller's byte limit and returns the hashes that did not fit as
// leftover.  The decoder reads the opcode to know how many hash bytes
// follow it.
//
// Encode and Decode only allocate local buffers; they may be called
// concurrently.
package issuance
