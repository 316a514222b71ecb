// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// issuance-cli - encode and decode packed issuance records
//
// encode reads a JSON record and prints the code buffer, the opcode
// selected for the byte size limit and any hashes that did not fit.
// decode accepts hex or base58 text and prints the recovered record.
// opcodes lists the known layouts.
//
// an optional Lua configuration file supplies defaults, for example:
//
//   local M = {}
//   M.byte_size_limit = 80
//   M.output_format = "json"
//   M.text_encoding = "hex"
//   M.logging = {
//       directory = "log",
//       file = "issuance-cli.log",
//       size = 1048576,
//       count = 10,
//       levels = {
//           DEFAULT = "info",
//           issuance = "debug",
//       },
//   }
//   return M
package main
