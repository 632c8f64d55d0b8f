package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Console reports check results line by line, with the verdict aligned to
// the right margin of the terminal.
type Console struct {
	w         io.Writer
	linewidth int // in fixed width ‘en’s
	ctx       *uax11.Context
	pass      *color.Color
	fail      *color.Color
	suite     *color.Color
}

// NewConsole creates a console reporter writing to w. The line width is
// taken from the terminal, if stdin is one.
func NewConsole(w io.Writer) *Console {
	grapheme.SetupGraphemeClasses()
	return &Console{
		w:         w,
		linewidth: lineWidthFromTerminal(),
		ctx:       uax11.ContextFromEnvironment(),
		pass:      color.New(color.FgGreen),
		fail:      color.New(color.FgRed, color.Bold),
		suite:     color.New(color.FgBlue),
	}
}

func lineWidthFromTerminal() int {
	if !term.IsTerminal(0) {
		return 65
	}
	w, _, err := term.GetSize(0)
	switch {
	case err != nil:
		return 65
	case w > 65:
		return w - 10
	case w > 30:
		return w - 5
	case w > 10:
		return w
	}
	return 10
}

// width returns the display width of s in ‘en’s.
func (con *Console) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), con.ctx)
}

// Report prints every result received from ch until ch is closed.
func (con *Console) Report(ch <-chan interface{}) {
	for m := range ch {
		con.Line(m.(Result))
	}
}

// Line prints a single result.
func (con *Console) Line(r Result) {
	label := fmt.Sprintf("%s: %s (%d steps)", r.Suite, r.Name, r.Steps)
	verdict := "ok"
	if !r.Passed() {
		verdict = "FAILED"
	}
	gap := con.linewidth - con.width(label) - con.width(verdict)
	if gap < 1 {
		gap = 1
	}
	con.suite.Fprint(con.w, r.Suite)
	fmt.Fprint(con.w, label[len(r.Suite):], " ", strings.Repeat(".", gap-1))
	if r.Passed() {
		con.pass.Fprintln(con.w, verdict)
		return
	}
	con.fail.Fprintln(con.w, verdict)
	fmt.Fprintf(con.w, "    %v\n", r.Err)
}

// Summary prints the totals of a run.
func (con *Console) Summary(s Summary) {
	fmt.Fprintln(con.w, strings.Repeat("-", con.linewidth))
	c := con.pass
	if s.Failed > 0 {
		c = con.fail
	}
	c.Fprintf(con.w, "%d passed, %d failed", s.Passed, s.Failed)
	fmt.Fprintf(con.w, " (%d steps in %v)\n", s.Steps, s.Elapsed.Round(time.Microsecond))
}
