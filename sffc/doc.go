// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sffc - significant figures floating coding of unit amounts
//
// An amount is stored as a mantissa and a decimal exponent in one to
// seven bytes.  The encoding is self delimiting: the three high bits
// of the first byte determine the total length.
//
//   flag  bytes  mantissa  exponent
//   000     1       5         -
//   001     2       9         4
//   010     3      17         4
//   011     4      25         4
//   100     5      34         3
//   101     6      42         3
//   110     7      53         -
//   111    (invalid)
package sffc
