// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cursor - explicit position over a packed buffer
//
// A single Reader is handed in turn to each field decoder so that
// every decoder starts exactly where the previous one stopped.
package cursor
