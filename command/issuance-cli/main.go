// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/issuance/fault"
	"github.com/bitmark-inc/issuance/issuance"
)

type metadata struct {
	config   *Configuration
	codec    *issuance.Codec
	format   string
	encoding string
	logging  bool
	verbose  bool
	r        io.Reader
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const logCategory = "issuance"

func main() {
	defer exitwithstatus.Handler()

	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp(r io.Reader, w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "issuance-cli"
	app.Usage = "encode and decode packed issuance records"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " read defaults from Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "format, f",
			Value: "",
			Usage: " output `FORMAT` [json|cbor|msgpack]",
		},
		cli.StringFlag{
			Name:  "encoding, e",
			Value: "",
			Usage: " packed text `ENCODING` [hex|base58]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Usage:     "pack a JSON issuance record into a code buffer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "record, r",
					Value: "-",
					Usage: " JSON record `FILE`, - for standard input",
				},
				cli.IntFlag{
					Name:  "limit, l",
					Value: 0,
					Usage: " byte size limit `BYTES` [default from configuration]",
				},
			},
			Action: runEncode,
		},
		{
			Name:      "decode",
			Usage:     "unpack a code buffer into an issuance record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "packed, p",
					Value: "",
					Usage: "*packed issuance `TEXT`",
				},
				cli.StringFlag{
					Name:  "torrent, t",
					Value: "",
					Usage: " external torrent `HASH`",
				},
				cli.StringFlag{
					Name:  "sha2, s",
					Value: "",
					Usage: " external sha2 `HASH`",
				},
			},
			Action: runDecode,
		},
		{
			Name:   "opcodes",
			Usage:  "list the issuance opcodes",
			Action: runOpcodes,
		},
		{
			Name: "version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		m := &metadata{
			config:  defaultConfiguration(),
			codec:   issuance.New(nil),
			verbose: verbose,
			r:       r,
			e:       e,
			w:       w,
		}

		file := c.GlobalString("config")
		if "" != file {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			config, err := getConfiguration(file)
			if nil != err {
				return fmt.Errorf("configuration: %q  error: %s", file, err)
			}
			if err := logger.Initialise(config.Logging); nil != err {
				return fmt.Errorf("logger setup failed with error: %s", err)
			}
			m.config = config
			m.logging = true
			m.codec = issuance.New(logger.New(logCategory))
		}

		m.format = strings.ToLower(c.GlobalString("format"))
		if "" == m.format {
			m.format = m.config.OutputFormat
		}
		if !validFormat(m.format) {
			return fault.ErrInvalidOutputFormat
		}

		m.encoding = strings.ToLower(c.GlobalString("encoding"))
		if "" == m.encoding {
			m.encoding = m.config.TextEncoding
		}
		switch m.encoding {
		case issuance.EncodingHex, issuance.EncodingBase58:
		default:
			return fault.ErrInvalidTextEncoding
		}

		c.App.Metadata["config"] = m
		return nil
	}

	// flush the log
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && m.logging {
			logger.Finalise()
		}
		return nil
	}

	return app
}
