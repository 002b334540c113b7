// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/configuration"
	"github.com/bitmark-inc/avlset/fault"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avlset.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// supported key types
const (
	keyTypeInteger = "integer"
	keyTypeString  = "string"
)

// Configuration - settings read from the Lua configuration file
type Configuration struct {
	KeyType          string               `gluamapper:"key_type" json:"key_type"`
	ShowDetail       bool                 `gluamapper:"show_detail" json:"show_detail"`
	CheckAfterUpdate bool                 `gluamapper:"check_after_update" json:"check_after_update"`
	Logging          logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaults with logging placed under a base directory
func defaultConfiguration(baseDirectory string) *Configuration {
	return &Configuration{
		KeyType:          keyTypeInteger,
		ShowDetail:       false,
		CheckAfterUpdate: false,
		Logging: logger.Configuration{
			Directory: filepath.Join(baseDirectory, defaultLogDirectory),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults with the log kept in a
// temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	if "" == configurationFileName {
		options := defaultConfiguration(filepath.Join(os.TempDir(), "avlset"))
		if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
			return nil, err
		}
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration(dataDirectory)

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.KeyType = strings.ToLower(options.KeyType)
	switch options.KeyType {
	case keyTypeInteger, keyTypeString:
	default:
		return nil, fmt.Errorf("key_type: %q: %w", options.KeyType, fault.ErrInvalidKeyType)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("log file: %q is not a plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}
	options.Logging.Directory = filepath.Clean(options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}
