/*
Command ftcheck exercises the containers of this module against the Go
builtins and reports the outcome on the console.

Every check runs a randomized sequence of operations on a Map or a Vector
and on a model (a builtin map or slice), comparing both after each step.
Node and element storage is drawn from tracking allocators, so ftcheck
also verifies that no construction leaks and that failed allocations leave
a container untouched.

Usage:

	ftcheck [-n steps] [-seed s] [-trace level] [-dot file] [-print]

With -dot, the tree underlying the last map check is written to file in
Graphviz format. With -print, it is printed sideways to stdout.

_________________________________________________________________________

BSD 3-Clause License
Copyright (c) Norbert Pillmayer
All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer traces with key 'containers.ftcheck'
func tracer() tracing.Trace {
	return tracing.Select("containers.ftcheck")
}

func main() {
	steps := flag.Int("n", 2000, "number of random operations per check")
	seed := flag.Int64("seed", 1, "seed for the random operation sequences")
	level := flag.String("trace", "Error", "trace level [Debug|Info|Error]")
	dotfile := flag.String("dot", "", "write the tree of the last map check to file (Graphviz)")
	printTree := flag.Bool("print", false, "print the tree of the last map check")
	flag.Parse()

	conf := testconfig.Conf{}
	conf.Set("tracing.adapter", "go")
	conf.Set("tracingcore", *level)
	conf.Set("tracelevel.root", *level)
	conf.Set("tracelevel.containers", *level)
	conf.Set("ftcheck.steps", strconv.Itoa(*steps))
	conf.Set("ftcheck.seed", strconv.FormatInt(*seed, 10))
	if err := setupTracing(conf); err != nil {
		fmt.Fprintf(os.Stderr, "ftcheck: %v\n", err)
		os.Exit(2)
	}
	defer trace2go.Teardown()

	opts := optionsFromConfig(conf)
	opts.Dotfile = *dotfile
	opts.Print = *printTree
	if ok := run(context.Background(), opts, NewConsole(os.Stdout)); !ok {
		os.Exit(1)
	}
}

// setupTracing installs the Go logging adapter for all tracers. The core
// tracer is set up by gconf, selectable tracers by trace2go.
func setupTracing(conf testconfig.Conf) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gtrace.CoreTracer.SetTraceLevel(tracing.TraceLevelFromString(conf.GetString("tracingcore")))
	return nil
}

func optionsFromConfig(conf testconfig.Conf) Options {
	opts := Options{Steps: 2000, Seed: 1}
	if conf.IsSet("ftcheck.steps") {
		opts.Steps = conf.GetInt("ftcheck.steps")
	}
	if conf.IsSet("ftcheck.seed") {
		opts.Seed = int64(conf.GetInt("ftcheck.seed"))
	}
	return opts
}

// run executes all checks and broadcasts their results to the console
// reporter and to a summary. It returns true if every check passed.
func run(ctx context.Context, opts Options, con *Console) bool {
	cast := caster.New(nil)
	display, ok1 := cast.Sub(ctx, 16)
	collect, ok2 := cast.Sub(ctx, 16)
	if !ok1 || !ok2 {
		tracer().Errorf("cannot subscribe to check results")
		return false
	}
	var wg sync.WaitGroup
	var summary Summary
	wg.Add(2)
	go func() {
		defer wg.Done()
		con.Report(display)
	}()
	go func() {
		defer wg.Done()
		for m := range collect {
			summary.Add(m.(Result))
		}
	}()
	last := runChecks(opts, func(r Result) {
		cast.Pub(r)
	})
	cast.Close()
	wg.Wait()
	con.Summary(summary)
	if last != nil {
		if err := emitTree(opts, last, os.Stdout); err != nil {
			tracer().Errorf("cannot output tree: %v", err)
			return false
		}
	}
	return summary.Failed == 0
}
