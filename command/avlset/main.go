// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"iter"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "string-keys", HasArg: getoptions.NO_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--string-keys] [--config-file=FILE] [command [arguments...] [; command...]]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["string-keys"]) > 0 {
		masterConfiguration.KeyType = keyTypeString
	}
	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
		masterConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// results are suppressed with --quiet, errors are always shown
	out := bufio.NewWriter(os.Stdout)
	if len(options["quiet"]) > 0 {
		out.Reset(io.Discard)
	}

	var commands iter.Seq[[]string]
	if len(arguments) > 0 {
		commands = commandsFromArguments(arguments)
	} else {
		commands = commandsFromReader(os.Stdin, log)
	}

	failures := 0
	setLog := logger.New("set")
	switch masterConfiguration.KeyType {
	case keyTypeInteger:
		p := newProcessor(avl.New[int64](), parseInteger, setLog, masterConfiguration, out)
		failures = p.run(flushEach(commands, out), os.Stderr)
	case keyTypeString:
		p := newProcessor(avl.New[string](), parseString, setLog, masterConfiguration, out)
		failures = p.run(flushEach(commands, out), os.Stderr)
	default:
		exitwithstatus.Message("%s: key type: %q: %s", program, masterConfiguration.KeyType, fault.ErrInvalidKeyType)
	}

	fault.PanicIfError("flush output", out.Flush())

	log.Infof("failed commands: %d", failures)
	if failures > 0 {
		exitwithstatus.Exit(1)
	}
}

// flush results before each command is read so interactive use
// sees output promptly
func flushEach(commands iter.Seq[[]string], out *bufio.Writer) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for fields := range commands {
			if !yield(fields) {
				return
			}
			fault.PanicIfError("flush output", out.Flush())
		}
	}
}
