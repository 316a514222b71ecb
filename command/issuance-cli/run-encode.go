// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/issuance/digest"
	"github.com/bitmark-inc/issuance/issuance"
)

type encodeResult struct {
	Opcode     issuance.Opcode `json:"opcode"`
	Size       int             `json:"size"`
	Limit      int             `json:"limit"`
	CodeBuffer string          `json:"codeBuffer"`
	Leftover   []digest.Hash   `json:"leftover"`
}

func runEncode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	limit := c.Int("limit")
	if 0 == limit {
		limit = m.config.ByteSizeLimit
	}
	if limit < 0 {
		return fmt.Errorf("limit: %d must be positive", limit)
	}

	fileName := c.String("record")
	if "" == fileName {
		return fmt.Errorf("record file is required")
	}

	var input io.Reader = m.r
	if "-" != fileName {
		f, err := os.Open(fileName)
		if nil != err {
			return err
		}
		defer f.Close()
		input = f
	}

	b, err := ioutil.ReadAll(input)
	if nil != err {
		return err
	}

	var record issuance.Record
	if err := json.Unmarshal(b, &record); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "record: %s\n", b)
		fmt.Fprintf(m.e, "limit: %d\n", limit)
	}

	encoded, err := m.codec.Encode(&record, limit)
	if nil != err {
		return err
	}

	text, err := encoded.CodeBuffer.Text(m.encoding)
	if nil != err {
		return err
	}

	result := encodeResult{
		Opcode:     encoded.Opcode,
		Size:       len(encoded.CodeBuffer),
		Limit:      limit,
		CodeBuffer: text,
		Leftover:   encoded.Leftover,
	}
	return printResult(m.w, m.format, result)
}
