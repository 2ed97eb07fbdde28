// Copyright (C) 2026 FuFu Official. All Rights Reserved.

// Program capp parses JSON-shaped input and prints the resulting value
// tree, with indentation and optional color.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/FuFu-Official/cappuccino"
	"github.com/FuFu-Official/cappuccino/printer"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/tailscale/hujson"
)

func main() {
	var filename string
	var indent int
	var maxDepth int
	var constants bool
	var standardize bool
	var colorizer *printer.Colorizer

	if isatty.IsTerminal(os.Stdout.Fd()) {
		colorizer = &defaultColorizer
	}
	flag.BoolFunc("colors", "force using colors", func(string) error {
		colorizer = &defaultColorizer
		return nil
	})
	flag.BoolFunc("nocolors", "disable colors", func(string) error {
		colorizer = nil
		return nil
	})
	flag.StringVar(&filename, "file", "", "input filename (stdin if omitted)")
	flag.IntVar(&indent, "indent", 2, "indent step for output (negative means one line)")
	flag.IntVar(&maxDepth, "maxdepth", 0, "container nesting limit (0 means the default)")
	flag.BoolVar(&constants, "constants", false, "recognize the literals true, false and null")
	flag.BoolVar(&standardize, "hujson", false, "standardize human JSON (comments, trailing commas) before parsing")
	flag.Parse()

	var in io.Reader = os.Stdin
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			fatalError("error opening %q: %s", filename, err)
		}
		defer f.Close()
		in = f
	}
	input, err := io.ReadAll(in)
	if err != nil {
		fatalError("error reading input: %s", err)
	}

	if standardize {
		std, err := hujson.Standardize(input)
		if err != nil {
			fatalError("error standardizing input: %s", err)
		}
		input = std
	}

	p := cappuccino.NewParser()
	// Standardized input is regular JSON, so its constants must parse.
	p.AllowConstants(constants || standardize)
	if maxDepth > 0 {
		p.SetMaxDepth(maxDepth)
	}

	v, n, err := p.ParseBytes(input)
	if err != nil {
		fatalError("parse error: %s", err)
	}

	var stdout io.Writer = os.Stdout
	if colorizer != nil {
		stdout = colorable.NewColorableStdout()
	}
	out := bufio.NewWriter(stdout)
	pr := &printer.Printer{Writer: out, IndentSize: indent, Colorizer: colorizer}
	if err := pr.Print(v); err != nil {
		fatalError("error: %s", err)
	}
	fmt.Fprintln(out)
	out.Flush()

	if rest := len(input) - n; rest > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d trailing bytes not consumed\n", rest)
	}
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}

// Some color ANSI codes
var (
	Reset = []byte("\033[0m")

	Yellow = []byte("\033[33m")
	Green  = []byte("\033[32m")

	DimWhite   = []byte("\033[37;2m")
	BrightBlue = []byte("\033[34;1m")
)

var defaultColorizer = printer.Colorizer{
	Key:    BrightBlue,
	String: Green,
	Number: Yellow,
	Const:  DimWhite,
	Reset:  Reset,
}
