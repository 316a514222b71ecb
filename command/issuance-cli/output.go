// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bitmark-inc/issuance/fault"
)

// output formats
const (
	formatJSON    = "json"
	formatCBOR    = "cbor"
	formatMsgpack = "msgpack"
)

// hashes and buffers are written as their text forms
var cborEncMode cbor.EncMode

func init() {
	options := cbor.CoreDetEncOptions()
	options.TextMarshaler = cbor.TextMarshalerTextString
	mode, err := options.EncMode()
	if nil != err {
		panic("cbor encoder initialisation failed: " + err.Error())
	}
	cborEncMode = mode
}

func validFormat(format string) bool {
	switch format {
	case formatJSON, formatCBOR, formatMsgpack:
		return true
	default:
		return false
	}
}

// marshal - serialise a result in one of the output formats
func marshal(format string, message interface{}) ([]byte, error) {
	switch format {
	case formatJSON:
		return json.MarshalIndent(message, "", "  ")

	case formatCBOR:
		return cborEncMode.Marshal(message)

	case formatMsgpack:
		var buffer bytes.Buffer
		enc := msgpack.NewEncoder(&buffer)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(message); nil != err {
			return nil, err
		}
		return buffer.Bytes(), nil

	default:
		return nil, fault.ErrInvalidOutputFormat
	}
}

// printResult - write a result; binary formats appear as hex
func printResult(handle io.Writer, format string, message interface{}) error {
	b, err := marshal(format, message)
	if nil != err {
		return err
	}

	if formatJSON == format {
		fmt.Fprintf(handle, "%s\n", b)
	} else {
		fmt.Fprintf(handle, "%s\n", hex.EncodeToString(b))
	}
	return nil
}
