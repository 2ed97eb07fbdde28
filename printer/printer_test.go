// Copyright (C) 2026 FuFu Official. All Rights Reserved.

package printer_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/FuFu-Official/cappuccino"
	"github.com/FuFu-Official/cappuccino/printer"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestText(t *testing.T) {
	wide := cappuccino.Object{
		cappuccino.Field("a", 1),
		cappuccino.Field("b", cappuccino.Array{cappuccino.Int(2), cappuccino.Int(3)}),
	}

	tests := []struct {
		input  cappuccino.Value
		indent int
		want   string
	}{
		{cappuccino.Int(5), 2, "5"},
		{cappuccino.Null, 2, "null"},
		{cappuccino.String("a\tb"), -1, `"a\tb"`},

		{cappuccino.Array{}, 2, "[]"},
		{cappuccino.Object{}, 2, "{}"},

		{cappuccino.Array{cappuccino.Int(1), cappuccino.Int(2)}, -1, "[1,2]"},
		{cappuccino.Array{cappuccino.Int(1), cappuccino.Int(2)}, 0, "[\n1,\n2\n]"},
		{cappuccino.Array{cappuccino.Int(1), cappuccino.Int(2)}, 2, "[\n  1,\n  2\n]"},

		{wide, -1, `{"a":1,"b":[2,3]}`},
		{wide, 2, "{\n  \"a\": 1,\n  \"b\": [\n    2,\n    3\n  ]\n}"},
	}
	for _, test := range tests {
		got := printer.Text(test.input, test.indent)
		if got != test.want {
			t.Errorf("Text(%v, %d):\nGot:  %q\nWant: %q", test.input, test.indent, got, test.want)
		}
	}
}

// Printing a tree and parsing the result must reproduce the tree, at any
// indent setting, since the printer stays within the parser's grammar.
func TestRoundTrip(t *testing.T) {
	values := []cappuccino.Value{
		cappuccino.Int(-3),
		cappuccino.Float(6.25),
		cappuccino.Float(1000), // integral floats must come back as Float, not Int
		cappuccino.Array{cappuccino.Float(-3), cappuccino.Int(-3)},
		cappuccino.String("a\tb\"c\\d"),
		cappuccino.Array{},
		cappuccino.Array{cappuccino.Int(1), cappuccino.String("two"), cappuccino.Float(0.5)},
		cappuccino.Object{
			cappuccino.Field("list", cappuccino.Array{
				cappuccino.Object{cappuccino.Field("x", 1)},
				cappuccino.Object{cappuccino.Field("x", 2)},
			}),
			cappuccino.Field("y", cappuccino.Object{cappuccino.Field("hello", "there")}),
		},
	}
	for _, v := range values {
		for _, indent := range []int{-1, 0, 2} {
			var buf bytes.Buffer
			p := &printer.Printer{Writer: &buf, IndentSize: indent}
			if err := p.Print(v); err != nil {
				t.Fatalf("Print(%v): unexpected error: %v", v, err)
			}
			got, n, err := cappuccino.ParseBytes(buf.Bytes())
			if err != nil {
				t.Errorf("Parse(%q): unexpected error: %v", buf.String(), err)
				continue
			}
			if n != buf.Len() {
				t.Errorf("Parse(%q): consumed %d bytes, want %d", buf.String(), n, buf.Len())
			}
			if diff := cmp.Diff(v, got); diff != "" {
				t.Errorf("Round trip at indent %d: wrong value (-want, +got):\n%s", indent, diff)
			}
		}
	}
}

func TestColor(t *testing.T) {
	c := &printer.Colorizer{
		Key:    []byte("<k>"),
		String: []byte("<s>"),
		Number: []byte("<n>"),
		Const:  []byte("<c>"),
		Reset:  []byte("<r>"),
	}
	var buf bytes.Buffer
	p := &printer.Printer{Writer: &buf, IndentSize: -1, Colorizer: c}
	err := p.Print(cappuccino.Object{
		cappuccino.Field("a", "x"),
		cappuccino.Field("b", 2),
		cappuccino.Field("c", nil),
	})
	if err != nil {
		t.Fatalf("Print: unexpected error: %v", err)
	}
	const want = `{<k>"a"<r>:<s>"x"<r>,<k>"b"<r>:<n>2<r>,<k>"c"<r>:<c>null<r>}`
	if got := buf.String(); got != want {
		t.Errorf("Print:\nGot:  %s\nWant: %s", got, want)
	}
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteError(t *testing.T) {
	werr := errors.New("pipe broke")
	p := &printer.Printer{Writer: failWriter{err: werr}, IndentSize: 2}
	err := p.Print(cappuccino.Array{cappuccino.Int(1)})
	if err == nil {
		t.Fatal("Print: got nil error")
	}
	var perr *printer.PrintError
	if !errors.As(err, &perr) {
		t.Errorf("Print: error %v is not a *PrintError", err)
	}
	if !errors.Is(err, werr) {
		t.Errorf("Print: error %v does not wrap the writer error", err)
	}
}

type bogusValue struct{}

func (bogusValue) JSON() string { return "bogus" }

func TestUnknownValue(t *testing.T) {
	p := &printer.Printer{Writer: &strings.Builder{}, IndentSize: 2}
	mtest.MustPanic(t, func() { p.Print(bogusValue{}) })
}
