// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/issuance/configuration"
	"github.com/bitmark-inc/issuance/fault"
	"github.com/bitmark-inc/issuance/issuance"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultByteSizeLimit = 80
	defaultOutputFormat  = formatJSON
	defaultTextEncoding  = issuance.EncodingHex

	defaultLogDirectory = "log"
	defaultLogFile      = "issuance-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// Configuration - settings read from the Lua file
type Configuration struct {
	ByteSizeLimit int                  `gluamapper:"byte_size_limit" json:"byte_size_limit"`
	OutputFormat  string               `gluamapper:"output_format" json:"output_format"`
	TextEncoding  string               `gluamapper:"text_encoding" json:"text_encoding"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaultConfiguration - used when no file is given
//
// the level map is copied since the Lua mapper writes into it
func defaultConfiguration() *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}
	return &Configuration{
		ByteSizeLimit: defaultByteSizeLimit,
		OutputFormat:  defaultOutputFormat,
		TextEncoding:  defaultTextEncoding,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.ByteSizeLimit <= 0 {
		return nil, fmt.Errorf("byte_size_limit: %d must be positive", options.ByteSizeLimit)
	}

	options.OutputFormat = strings.ToLower(options.OutputFormat)
	if !validFormat(options.OutputFormat) {
		return nil, fault.ErrInvalidOutputFormat
	}

	options.TextEncoding = strings.ToLower(options.TextEncoding)
	switch options.TextEncoding {
	case issuance.EncodingHex, issuance.EncodingBase58:
	default:
		return nil, fault.ErrInvalidTextEncoding
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = configuration.EnsureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}
