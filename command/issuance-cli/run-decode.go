// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/issuance/digest"
	"github.com/bitmark-inc/issuance/issuance"
)

type decodeResult struct {
	Opcode issuance.Opcode  `json:"opcode"`
	Size   int              `json:"size"`
	Record *issuance.Record `json:"record"`
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed := c.String("packed")
	if "" == packed {
		return fmt.Errorf("packed issuance is required")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "packed: %s  encoding: %s\n", packed, m.encoding)
	}

	buffer, err := issuance.ParsePacked(packed, m.encoding)
	if nil != err {
		return err
	}

	opcode, err := issuance.ReadOpcode(buffer)
	if nil != err {
		return err
	}

	record, err := m.codec.Decode(buffer)
	if nil != err {
		return err
	}

	// restore hashes that were carried outside the code buffer
	if s := c.String("torrent"); "" != s {
		torrent, err := digest.ParseTorrent(s)
		if nil != err {
			return err
		}
		if nil != record.TorrentHash && torrent != *record.TorrentHash {
			return fmt.Errorf("torrent hash: %s does not match embedded: %s", torrent, record.TorrentHash)
		}
		record.TorrentHash = &torrent
	}
	if s := c.String("sha2"); "" != s {
		sha2, err := digest.ParseSHA2(s)
		if nil != err {
			return err
		}
		if nil != record.SHA2 && sha2 != *record.SHA2 {
			return fmt.Errorf("sha2: %s does not match embedded: %s", sha2, record.SHA2)
		}
		record.SHA2 = &sha2
	}

	result := decodeResult{
		Opcode: opcode,
		Size:   len(buffer),
		Record: record,
	}
	return printResult(m.w, m.format, result)
}
