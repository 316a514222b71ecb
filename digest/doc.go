// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - fixed size metadata hashes referenced by an issuance
//
// Hashes are computed elsewhere; this package only carries them and
// converts to and from their text forms.
package digest
