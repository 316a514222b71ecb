// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/issuance/issuance"
)

type opcodeEntry struct {
	Value        string `json:"value"`
	Name         string `json:"name"`
	HashesLength int    `json:"hashesLength"`
}

func runOpcodes(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	opcodes := issuance.Opcodes()
	entries := make([]opcodeEntry, 0, len(opcodes))
	for _, opcode := range opcodes {
		entries = append(entries, opcodeEntry{
			Value:        fmt.Sprintf("0x%02x", byte(opcode)),
			Name:         opcode.String(),
			HashesLength: opcode.EmbeddedHashLength(),
		})
	}
	return printResult(m.w, m.format, entries)
}
