// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - compact payment list carried after an issuance
//
// Each entry is one flag/output byte (two when a range is used)
// followed by an sffc amount.  A list has no count prefix: it runs to
// the end of the buffer it is decoded from.
package payment
