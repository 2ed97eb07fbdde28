// Copyright (C) 2026 FuFu Official. All Rights Reserved.

// Package cappuccino implements a permissive recursive-descent parser
// that converts JSON-shaped text into an in-memory value tree.
//
// # Parsing
//
// Parse consumes a single value from the front of its input and reports
// the value together with the number of leading bytes consumed, including
// any leading whitespace:
//
//	v, n, err := cappuccino.Parse(`[1, [2, "three"], 4]`)
//
// Trailing bytes after the first value are not an error; the caller can
// tell from n how much of the input was used. Failures are reported as a
// *SyntaxError carrying the byte offset where the parse gave up. A failed
// element fails its enclosing containers all the way up; there is no
// partial recovery.
//
// To set options, construct a Parser:
//
//	p := cappuccino.NewParser()
//	p.AllowConstants(true)
//	p.SetMaxDepth(64)
//	v, n, err := p.Parse(src)
//
// # Grammar
//
// The accepted grammar is JSON-shaped but deliberately looser than RFC
// 8259, and the quirks are part of the contract:
//
//   - Numbers may carry a leading "+", and a partial match ends at the
//     grammar boundary, so "01" parses as 0 with one byte consumed.
//   - Strings decode single-letter escapes (\n \r \0 \t \v \f \b \a);
//     any other escaped character, including "u", stands for itself.
//     An unterminated string quietly takes the rest of the input.
//   - Commas between array or object elements are optional, as are the
//     colons between object keys and values.
//   - Object keys must be strings; the first occurrence of a key wins
//     and later duplicates are parsed but dropped.
//   - The literals true, false, and null are recognized only when
//     enabled with AllowConstants.
//
// Nesting depth is bounded (see DefaultMaxDepth) so that adversarial
// input exhausts the limit, not the stack.
//
// # Values
//
// A parsed value is one of Null, Bool, Int, Float, String, Array, or
// Object. Each renders itself as compact JSON-shaped text through its
// JSON method, and that output parses back to an equal value. For a
// human-oriented rendering with indentation and color, see the printer
// subpackage.
package cappuccino
