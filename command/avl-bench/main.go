// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/bitmark-inc/avl"
	"github.com/bitmark-inc/avl/fault"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/google/btree"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// degree of the baseline B-Tree
const btreeDegree = 32

// timings for one container over a load/search/traverse/unload cycle
type result struct {
	name     string
	insert   time.Duration
	search   time.Duration
	traverse time.Duration
	remove   time.Duration
	sum      int64
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "avl-bench"
	app.Usage = "time AVL tree operations against a B-Tree baseline"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " print each phase as it finishes",
		},
		cli.IntFlag{
			Name:  "items, n",
			Value: 100000,
			Usage: " number of items to load `COUNT`",
		},
		cli.Int64Flag{
			Name:  "seed, s",
			Value: 1,
			Usage: " pseudo random seed `NUMBER`",
		},
		cli.StringFlag{
			Name:  "order, o",
			Value: "random",
			Usage: " insertion order `random|ascending|descending`",
		},
		cli.StringFlag{
			Name:  "log-dir, d",
			Value: ".",
			Usage: " directory for the log file `DIR`",
		},
	}

	app.Action = runBenchmark

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// run all phases over both containers and print a timing table
func runBenchmark(c *cli.Context) error {

	items := c.Int("items")
	if items < 1 {
		return fmt.Errorf("invalid items: %d", items)
	}

	seed := c.Int64("seed")
	order := c.String("order")
	verbose := c.Bool("verbose")

	logging := logger.Configuration{
		Directory: c.String("log-dir"),
		File:      "avl-bench.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}

	// start logging
	if err := logger.Initialise(logging); nil != err {
		return err
	}
	defer logger.Finalise()

	if err := fault.Initialise(); nil != err {
		return err
	}
	defer fault.Finalise()

	log := logger.New("bench")
	log.Infof("items: %d  order: %s  seed: %d", items, order, seed)

	keys := make([]int, items)
	for i := 0; i < items; i += 1 {
		keys[i] = i
	}

	rnd := rand.New(rand.NewSource(seed))
	switch order {
	case "random":
		rnd.Shuffle(items, func(i int, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
	case "ascending":
		// keys are already ascending
	case "descending":
		for i, j := 0, items-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	default:
		return fmt.Errorf("order: %q can only be random/ascending/descending", order)
	}

	// searches and deletes run in their own random order
	lookups := make([]int, items)
	copy(lookups, keys)
	rnd.Shuffle(items, func(i int, j int) {
		lookups[i], lookups[j] = lookups[j], lookups[i]
	})

	avlResult := benchAVL(log, verbose, keys, lookups)
	btreeResult := benchBTree(log, verbose, keys, lookups)

	if avlResult.sum != btreeResult.sum {
		fault.Panicf("traverse sums differ: avl: %d  btree: %d", avlResult.sum, btreeResult.sum)
	}

	fmt.Printf("items: %d  order: %s  seed: %d\n", items, order, seed)
	fmt.Printf("%-8s %14s %14s %14s %14s\n", "", "insert", "search", "traverse", "delete")
	for _, r := range []result{avlResult, btreeResult} {
		fmt.Printf("%-8s %14v %14v %14v %14v\n", r.name, r.insert, r.search, r.traverse, r.remove)
	}

	return nil
}

// load, probe, walk and unload an AVL tree
func benchAVL(log *logger.L, verbose bool, keys []int, lookups []int) result {
	r := result{name: "avl"}

	tree := avl.New[int]()

	start := time.Now()
	for _, key := range keys {
		tree.Insert(key)
	}
	r.insert = time.Since(start)
	phase(log, verbose, "avl", "insert", r.insert)

	fault.PanicIfError("avl-bench: tree audit", tree.CheckUp())
	if len(keys) != tree.Count() {
		fault.Panicf("avl count: %d  expected: %d", tree.Count(), len(keys))
	}

	start = time.Now()
	for _, key := range lookups {
		if tree.Search(key).IsEnd() {
			fault.Panicf("avl search lost the key: %d", key)
		}
	}
	r.search = time.Since(start)
	phase(log, verbose, "avl", "search", r.search)

	start = time.Now()
	for value := range tree.All() {
		r.sum += int64(value)
	}
	r.traverse = time.Since(start)
	phase(log, verbose, "avl", "traverse", r.traverse)

	start = time.Now()
	for _, key := range lookups {
		if !tree.Delete(key) {
			fault.Panicf("avl delete lost the key: %d", key)
		}
	}
	r.remove = time.Since(start)
	phase(log, verbose, "avl", "delete", r.remove)

	if !tree.IsEmpty() {
		fault.Panicf("avl not empty after unload: %d items left", tree.Count())
	}

	return r
}

// the same cycle over the baseline B-Tree
func benchBTree(log *logger.L, verbose bool, keys []int, lookups []int) result {
	r := result{name: "btree"}

	bt := btree.NewOrderedG[int](btreeDegree)

	start := time.Now()
	for _, key := range keys {
		bt.ReplaceOrInsert(key)
	}
	r.insert = time.Since(start)
	phase(log, verbose, "btree", "insert", r.insert)

	if len(keys) != bt.Len() {
		fault.Panicf("btree length: %d  expected: %d", bt.Len(), len(keys))
	}

	start = time.Now()
	for _, key := range lookups {
		if _, ok := bt.Get(key); !ok {
			fault.Panicf("btree search lost the key: %d", key)
		}
	}
	r.search = time.Since(start)
	phase(log, verbose, "btree", "search", r.search)

	start = time.Now()
	bt.Ascend(func(item int) bool {
		r.sum += int64(item)
		return true
	})
	r.traverse = time.Since(start)
	phase(log, verbose, "btree", "traverse", r.traverse)

	start = time.Now()
	for _, key := range lookups {
		if _, ok := bt.Delete(key); !ok {
			fault.Panicf("btree delete lost the key: %d", key)
		}
	}
	r.remove = time.Since(start)
	phase(log, verbose, "btree", "delete", r.remove)

	return r
}

// internal: report one finished phase
func phase(log *logger.L, verbose bool, name string, operation string, elapsed time.Duration) {
	log.Infof("%s: %s: %v", name, operation, elapsed)
	if verbose {
		fmt.Printf("%s: %s: %v\n", name, operation, elapsed)
	}
}
