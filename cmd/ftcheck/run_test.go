package main

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

func TestChecksPass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	for i, c := range checks {
		n, _, err := c.run(rand.New(rand.NewSource(int64(i))), 300)
		if err != nil {
			t.Errorf("check %s/%s failed after %d steps: %v", c.suite, c.name, n, err)
		}
	}
}

func TestRunChecksPublishesEveryResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	var results []Result
	last := runChecks(Options{Steps: 50, Seed: 7}, func(r Result) {
		results = append(results, r)
	})
	if len(results) != len(checks) {
		t.Fatalf("expected %d results, have %d", len(checks), len(results))
	}
	if last == nil || last.Tree().Check() != nil {
		t.Fatalf("expected a valid map from the last map check")
	}
}

func TestRunBroadcastsToConsole(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	color.NoColor = true
	var out bytes.Buffer
	con := NewConsole(&out)
	con.ctx, con.linewidth = uax11.LatinContext, 60
	dot := filepath.Join(t.TempDir(), "tree.dot")
	if ok := run(context.Background(), Options{Steps: 40, Seed: 3, Dotfile: dot}, con); !ok {
		t.Fatalf("expected all checks to pass, output:\n%s", out.String())
	}
	if got := strings.Count(out.String(), "ok\n"); got != len(checks) {
		t.Errorf("expected %d ok lines, have %d:\n%s", len(checks), got, out.String())
	}
	if !strings.Contains(out.String(), "passed, 0 failed") {
		t.Errorf("expected a summary line, have:\n%s", out.String())
	}
	data, err := os.ReadFile(dot)
	if err != nil || !strings.Contains(string(data), "digraph") {
		t.Errorf("expected a Graphviz file, err=%v", err)
	}
}

func TestConsoleLineAlignment(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	con := NewConsole(&out)
	con.ctx = uax11.LatinContext
	con.linewidth = 40
	con.Line(Result{Suite: "map", Name: "bounds", Steps: 3})
	line := strings.TrimSuffix(out.String(), "\n")
	if !strings.HasSuffix(line, "ok") || con.width(line) < 40 {
		t.Errorf("expected line padded to the right margin, have %q", line)
	}
	out.Reset()
	con.Line(Result{Suite: "vector", Name: "growth", Err: errors.New("boom")})
	if !strings.Contains(out.String(), "FAILED") || !strings.Contains(out.String(), "boom") {
		t.Errorf("expected failure to be reported, have %q", out.String())
	}
}

func TestOptionsFromConfig(t *testing.T) {
	conf := testconfig.Conf{}
	if opts := optionsFromConfig(conf); opts.Steps != 2000 || opts.Seed != 1 {
		t.Errorf("unexpected defaults %+v", opts)
	}
	conf.Set("ftcheck.steps", "17")
	conf.Set("ftcheck.seed", "5")
	if opts := optionsFromConfig(conf); opts.Steps != 17 || opts.Seed != 5 {
		t.Errorf("expected options from configuration, have %+v", opts)
	}
}

func TestSummary(t *testing.T) {
	var s Summary
	s.Add(Result{Steps: 3})
	s.Add(Result{Steps: 4, Err: errors.New("x")})
	if s.Passed != 1 || s.Failed != 1 || s.Steps != 7 {
		t.Errorf("unexpected summary %+v", s)
	}
}
