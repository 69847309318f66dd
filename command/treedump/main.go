// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree"
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
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--verbose] [--config-file=FILE] (print|height|neighborhood TARGET DISTANCE) key...", program)
	}

	configurationFile := ""
	if len(options["config-file"]) > 0 {
		configurationFile = options["config-file"][0]
	}
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("treedump")

	command := arguments[0]
	arguments = arguments[1:]

	target := intKey(0)
	distance := 0
	if "neighborhood" == command {
		if len(arguments) < 2 {
			exitwithstatus.Message("%s: neighborhood needs TARGET and DISTANCE arguments", program)
		}
		target, err = parseKey(arguments[0])
		if nil != err {
			exitwithstatus.Message("%s: invalid target: %q  error: %s", program, arguments[0], err)
		}
		distance, err = strconv.Atoi(arguments[1])
		if nil != err {
			exitwithstatus.Message("%s: invalid distance: %q  error: %s", program, arguments[1], err)
		}
		arguments = arguments[2:]
	}

	tree := avltree.New()
	for _, argument := range arguments {
		key, err := parseKey(argument)
		if nil != err {
			exitwithstatus.Message("%s: invalid key: %q  error: %s", program, argument, err)
		}
		added, err := tree.Insert(key)
		if nil != err {
			exitwithstatus.Message("%s: insert: %q  error: %s", program, argument, err)
		}
		log.Debugf("insert: %v  added: %v", key, added)
	}
	log.Infof("tree holds %d keys, height: %d", tree.Count(), tree.Height())

	switch command {
	case "print":
		depth := tree.Print(true)
		fmt.Printf("keys: %d  height: %d  depth: %d\n", tree.Count(), tree.Height(), depth)

	case "height":
		fmt.Printf("%d\n", tree.Height())

	case "neighborhood":
		set, err := tree.Neighborhood(target, distance)
		if nil != err {
			exitwithstatus.Message("%s: neighborhood of: %v  error: %s", program, target, err)
		}
		for _, key := range set.Elements() {
			fmt.Printf("%v\n", key)
		}

	default:
		exitwithstatus.Message("%s: unknown command: %q", program, command)
	}
}

// integer key type for command line input
type intKey int

func (k intKey) Compare(x interface{}) int {
	n := x.(intKey)
	switch {
	case k > n:
		return +1
	case k < n:
		return -1
	default:
		return 0
	}
}

func (k intKey) String() string {
	return strconv.Itoa(int(k))
}

func parseKey(s string) (intKey, error) {
	n, err := strconv.Atoi(s)
	return intKey(n), err
}
