// Copyright (C) 2026 FuFu Official. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/FuFu-Official/cappuccino/internal/escape"
	"go4.org/mem"
)

func TestUnescape(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`a\tb`, "a\tb"},
		{`line\n`, "line\n"},
		{`\r\n`, "\r\n"},
		{`\0`, "\x00"},
		{`bell \a bs \b`, "bell \a bs \b"},
		{`\v\f`, "\v\f"},
		{`\"quoted\"`, `"quoted"`},
		{`back\\slash`, `back\slash`},
		{`sl\/ash`, "sl/ash"},

		// Unrecognized escapes decode to the escaped character itself.
		{`\q\z`, "qz"},

		// There is no \u decoding; the "u" maps to itself.
		{"\\u0041", "u0041"},

		// A trailing backslash is dropped.
		{`half\`, "half"},
	}
	for _, test := range tests {
		got := string(escape.Unescape(mem.S(test.input)))
		if got != test.want {
			t.Errorf("Unescape(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"a\tb", `a\tb`},
		{"\a\b\v\f\r\n", `\a\b\v\f\r\n`},
		{"\x00", `\0`},
		{`say "hi"`, `say \"hi\"`},
		{`back\slash`, `back\\slash`},

		// Control characters outside the table pass through verbatim.
		{"\x01\x1f", "\x01\x1f"},

		// Multibyte text is preserved byte for byte.
		{"héllo", "héllo"},
	}
	for _, test := range tests {
		got := string(escape.Quote(mem.S(test.input)))
		if got != test.want {
			t.Errorf("Quote(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"tab\there",
		"all the escapes: \a\b\t\n\v\f\r\x00\"\\",
		"stray controls \x01\x02\x1f",
		"ünïcode ♥",
	}
	for _, input := range inputs {
		q := escape.Quote(mem.S(input))
		got := string(escape.Unescape(mem.B(q)))
		if got != input {
			t.Errorf("Unescape(Quote(%q)): got %q", input, got)
		}
	}
}
