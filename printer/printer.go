// Copyright (C) 2026 FuFu Official. All Rights Reserved.

// Package printer renders parsed values as indented, optionally
// colorized text for diagnostics.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/FuFu-Official/cappuccino"
)

// A Printer writes values to an io.Writer using IndentSize spaces per
// indentation level. If IndentSize is negative the output is a single
// line; if it is 0 elements get their own lines but no indentation.
// A nil Colorizer prints everything unstyled.
//
// Single-line uncolored output stays within the grammar accepted by
// cappuccino.Parse.
type Printer struct {
	io.Writer
	IndentSize int
	Colorizer  *Colorizer

	indentLevel int
}

// Print renders v to the printer's writer. Errors from the writer are
// reported as a *PrintError. Print panics if v is not one of the parser's
// value variants.
func (p *Printer) Print(v cappuccino.Value) (err error) {
	defer catchPrintError(&err)
	p.printValue(v)
	return nil
}

// A PrintError wraps an error reported by a Printer's underlying writer.
type PrintError struct {
	Err error
}

func (e *PrintError) Error() string { return fmt.Sprintf("print: %s", e.Err) }

func (e *PrintError) Unwrap() error { return e.Err }

// Text renders v to a string with the given indent step and no color.
func Text(v cappuccino.Value, indentSize int) string {
	var sb strings.Builder
	p := &Printer{Writer: &sb, IndentSize: indentSize}
	p.Print(v)
	return sb.String()
}

// printValue dispatches on the variant of v, leaves before containers.
func (p *Printer) printValue(v cappuccino.Value) {
	if v == cappuccino.Null {
		p.scalar(v)
		return
	}
	switch t := v.(type) {
	case cappuccino.Bool, cappuccino.Int, cappuccino.Float, cappuccino.String:
		p.scalar(t)
	case cappuccino.Array:
		p.printArray(t)
	case cappuccino.Object:
		p.printObject(t)
	default:
		panic(fmt.Sprintf("printer: unknown value %T", v))
	}
}

func (p *Printer) printArray(a cappuccino.Array) {
	if len(a) == 0 {
		p.printString("[]")
		return
	}
	p.printString("[")
	p.indent()
	for i, v := range a {
		if i > 0 {
			p.printString(",")
			p.newLine()
		}
		p.printValue(v)
	}
	p.dedent()
	p.printString("]")
}

func (p *Printer) printObject(o cappuccino.Object) {
	if len(o) == 0 {
		p.printString("{}")
		return
	}
	p.printString("{")
	p.indent()
	for i, m := range o {
		if i > 0 {
			p.printString(",")
			p.newLine()
		}
		p.color(p.Colorizer.keyCode(), cappuccino.String(m.Key).JSON())
		p.printString(":")
		if p.IndentSize >= 0 {
			p.printString(" ")
		}
		p.printValue(m.Value)
	}
	p.dedent()
	p.printString("}")
}

func (p *Printer) scalar(v cappuccino.Value) { p.color(p.Colorizer.valueCode(v), v.JSON()) }

func (p *Printer) color(code []byte, text string) {
	if len(code) > 0 {
		p.printBytes(code)
		p.printString(text)
		p.printBytes(p.Colorizer.Reset)
		return
	}
	p.printString(text)
}

// newLine starts a new line at the current indentation level. It does
// nothing when IndentSize is negative, keeping the output on one line.
func (p *Printer) newLine() {
	if p.IndentSize < 0 {
		return
	}
	p.printBytes([]byte{'\n'})
	for i := p.IndentSize * p.indentLevel; i > 0; i-- {
		p.printBytes([]byte{' '})
	}
}

func (p *Printer) indent() {
	p.indentLevel++
	p.newLine()
}

func (p *Printer) dedent() {
	p.indentLevel--
	p.newLine()
}

func (p *Printer) printString(s string) { p.printBytes([]byte(s)) }

func (p *Printer) printBytes(b []byte) {
	if _, err := p.Write(b); err != nil {
		panic(&PrintError{Err: err})
	}
}

func catchPrintError(err *error) {
	if r := recover(); r != nil {
		perr, ok := r.(*PrintError)
		if !ok {
			panic(r)
		}
		*err = perr
	}
}
