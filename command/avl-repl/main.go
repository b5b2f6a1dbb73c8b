// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avl"
	"github.com/bitmark-inc/avl/fault"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// state of one interactive session
type repl struct {
	tree   *avl.Tree[int]
	saved  *avl.Tree[int]
	log    *logger.L
	reader *bufio.Reader
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "log-dir", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, avl.Version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--log-dir=DIR]", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	logDirectory := "."
	if len(options["log-dir"]) > 0 {
		logDirectory = options["log-dir"][0]
	}

	level := "critical"
	if len(options["verbose"]) > 0 {
		level = "debug"
	}

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "avl-repl.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	r := &repl{
		tree:   avl.New[int](),
		log:    logger.New("repl"),
		reader: bufio.NewReader(os.Stdin),
	}

	fmt.Printf("avl-repl: interactive ordered tree session\n")
	fmt.Printf("type help for the command list, quit to exit\n")

command_loop:
	for {
		fmt.Printf("avl> ")
		line, err := r.reader.ReadString('\n')
		if nil != err {
			fmt.Printf("\n")
			break command_loop
		}

		line = strings.TrimSpace(line)
		if "" == line {
			continue command_loop
		}

		if !r.handleCommand(line) {
			break command_loop
		}
	}
}

// dispatch one command line, false ends the session
func (r *repl) handleCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	args := parts[1:]

	r.log.Debugf("command: %s  arguments: %v", command, args)

	switch command {

	case "help":
		printHelp()

	case "quit", "exit", "q":
		return false

	case "insert", "add", "i":
		r.cmdInsert(args)

	case "delete", "del", "d":
		r.cmdDelete(args)

	case "find", "f":
		r.cmdFind(args)

	case "min":
		if value, ok := r.tree.Min(); ok {
			fmt.Printf("minimum: %d\n", value)
		} else {
			fmt.Printf("tree is empty\n")
		}

	case "max":
		if value, ok := r.tree.Max(); ok {
			fmt.Printf("maximum: %d\n", value)
		} else {
			fmt.Printf("tree is empty\n")
		}

	case "delmin":
		if value, ok := r.tree.DeleteMin(); ok {
			fmt.Printf("removed minimum: %d\n", value)
		} else {
			fmt.Printf("tree is empty\n")
		}

	case "delmax":
		if value, ok := r.tree.DeleteMax(); ok {
			fmt.Printf("removed maximum: %d\n", value)
		} else {
			fmt.Printf("tree is empty\n")
		}

	case "list", "l":
		for value := range r.tree.All() {
			fmt.Printf("%d ", value)
		}
		fmt.Printf("\ntotal: %d\n", r.tree.Count())

	case "rlist":
		for value := range r.tree.Backward() {
			fmt.Printf("%d ", value)
		}
		fmt.Printf("\ntotal: %d\n", r.tree.Count())

	case "print", "p":
		r.cmdPrint(args)

	case "check":
		if err := r.tree.CheckUp(); nil != err {
			r.log.Errorf("audit failed: %s", err)
			fmt.Printf("fault: %s\n", err)
		} else {
			fmt.Printf("tree structure is consistent\n")
		}

	case "count":
		fmt.Printf("total: %d\n", r.tree.Count())

	case "snap":
		r.saved = r.tree.Clone()
		fmt.Printf("saved a copy holding %d values\n", r.saved.Count())

	case "rollback":
		if nil == r.saved {
			fmt.Printf("nothing saved, use snap first\n")
		} else {
			r.tree = r.saved.Clone()
			fmt.Printf("restored %d values\n", r.tree.Count())
		}

	case "clear":
		r.tree.Clear()
		fmt.Printf("tree cleared\n")

	default:
		fmt.Printf("unknown command: %q  type help for the command list\n", command)
	}

	return true
}

// add each listed value
func (r *repl) cmdInsert(args []string) {
	if 0 == len(args) {
		fmt.Printf("usage: insert value [value...]\n")
		return
	}
	for _, arg := range args {
		value, err := strconv.Atoi(arg)
		if nil != err {
			fmt.Printf("invalid value: %q\n", arg)
			continue
		}
		if _, added := r.tree.Insert(value); added {
			fmt.Printf("inserted: %d\n", value)
		} else {
			fmt.Printf("insert %d error: %s\n", value, fault.ErrValueAlreadyExists)
		}
	}
}

// remove each listed value
func (r *repl) cmdDelete(args []string) {
	if 0 == len(args) {
		fmt.Printf("usage: delete value [value...]\n")
		return
	}
	for _, arg := range args {
		value, err := strconv.Atoi(arg)
		if nil != err {
			fmt.Printf("invalid value: %q\n", arg)
			continue
		}
		if r.tree.Delete(value) {
			fmt.Printf("deleted: %d\n", value)
		} else {
			fmt.Printf("delete %d error: %s\n", value, fault.ErrValueNotFound)
		}
	}
}

// locate one value and show its node
func (r *repl) cmdFind(args []string) {
	if 1 != len(args) {
		fmt.Printf("usage: find value\n")
		return
	}
	value, err := strconv.Atoi(args[0])
	if nil != err {
		fmt.Printf("invalid value: %q\n", args[0])
		return
	}
	node := r.tree.Search(value)
	if node.IsEnd() {
		fmt.Printf("find %d error: %s\n", value, fault.ErrValueNotFound)
		return
	}
	fmt.Printf("found: %d  height: %d  balance: %+d\n",
		node.Value(), node.Height(), node.BalanceFactor())
}

// dump the tree structure sideways
func (r *repl) cmdPrint(args []string) {
	detail := len(args) > 0 && ("detail" == args[0] || "d" == args[0])
	printed := r.tree.Print(detail)
	fmt.Printf("printed nodes: %d\n", printed)
}

func printHelp() {
	help := `
commands:
  insert value [value...]   add values to the tree
  delete value [value...]   remove values from the tree
  find value                locate one value
  min | max                 show the smallest or largest value
  delmin | delmax           remove the smallest or largest value
  list | rlist              all values ascending or descending
  print [detail]            dump the tree structure
  check                     audit the tree structure
  count                     number of stored values
  snap                      save a deep copy of the tree
  rollback                  restore the saved copy
  clear                     remove all values
  help                      this list
  quit                      exit
`
	fmt.Printf("%s\n", help)
}
