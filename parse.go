// Copyright (C) 2026 FuFu Official. All Rights Reserved.

package cappuccino

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/FuFu-Official/cappuccino/internal/escape"
	"go4.org/mem"
)

// DefaultMaxDepth is the container nesting limit used when no explicit
// limit has been set with [Parser.SetMaxDepth].
const DefaultMaxDepth = 200

// ErrTooDeep is reported, wrapped in a *SyntaxError, when the nesting of
// arrays and objects in the input exceeds the parser's depth limit.
var ErrTooDeep = errors.New("nesting too deep")

// A SyntaxError reports that input could not be parsed as a value, and the
// byte offset at which the parse gave up. A failure anywhere in a nested
// element fails the enclosing containers all the way up; there is no
// partial recovery.
type SyntaxError struct {
	Offset  int    // byte offset into the original input
	Message string // human-readable description

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// A Parser holds the options for parsing values from text. The zero value
// is ready for use with the default options.
type Parser struct {
	maxDepth  int
	constants bool
}

// NewParser constructs a parser with the default options.
func NewParser() *Parser { return new(Parser) }

// SetMaxDepth sets the container nesting limit to n. Values of n less than
// 1 restore DefaultMaxDepth.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// AllowConstants configures the parser to recognize (true) or reject
// (false) the literals true, false, and null. The base grammar has no
// constant tokens, so by default Bool values are reachable only by direct
// construction.
func (p *Parser) AllowConstants(ok bool) { p.constants = ok }

// Parse parses a single value from the front of src. It returns the value
// and the number of leading bytes of src consumed to produce it, including
// any leading whitespace. In case of error the count is 0 and the error
// has concrete type *SyntaxError.
//
// Parsing is deliberately permissive: commas and colons between elements
// are optional, an unterminated string or container ends quietly at the
// end of the input, and trailing bytes after the first value are left
// unconsumed for the caller to deal with.
func (p *Parser) Parse(src string) (Value, int, error) { return p.parse(mem.S(src)) }

// ParseBytes is Parse for a byte slice.
func (p *Parser) ParseBytes(src []byte) (Value, int, error) { return p.parse(mem.B(src)) }

// Parse parses a single value from the front of src with the default
// options. See [Parser.Parse].
func Parse(src string) (Value, int, error) { return new(Parser).Parse(src) }

// ParseBytes is Parse for a byte slice.
func ParseBytes(src []byte) (Value, int, error) { return new(Parser).ParseBytes(src) }

func (p *Parser) parse(src mem.RO) (Value, int, error) {
	max := p.maxDepth
	if max < 1 {
		max = DefaultMaxDepth
	}
	v, n, err := p.parseValue(src, 0, max)
	if err != nil {
		return nil, 0, err
	}
	return v, n, nil
}

// parseValue parses one value from the front of src. The base offset
// locates src within the whole input for error reporting; depth counts
// down toward the nesting limit.
func (p *Parser) parseValue(src mem.RO, base, depth int) (Value, int, error) {
	if depth < 1 {
		return nil, 0, &SyntaxError{Offset: base, Message: ErrTooDeep.Error(), err: ErrTooDeep}
	}
	if src.Len() == 0 {
		return nil, 0, &SyntaxError{Offset: base, Message: "empty input"}
	}

	// Leading whitespace is charged to the value that follows it.
	if ws := skipSpace(src, 0); ws > 0 {
		v, n, err := p.parseValue(src.SliceFrom(ws), base+ws, depth)
		if err != nil {
			return nil, 0, err
		}
		return v, ws + n, nil
	}

	switch c := src.At(0); {
	case isNumStart(c):
		return parseNumber(src, base)
	case c == '"':
		v, n := parseString(src)
		return v, n, nil
	case c == '[':
		return p.parseArray(src, base, depth)
	case c == '{':
		return p.parseObject(src, base, depth)
	}
	if p.constants {
		if v, n, ok := parseConstant(src); ok {
			return v, n, nil
		}
	}
	return nil, 0, &SyntaxError{Offset: base, Message: fmt.Sprintf("unexpected %q", src.At(0))}
}

// parseNumber parses the longest numeric prefix of src, as an Int if the
// text is within int64 range and has no fraction or exponent, otherwise as
// a Float.
func parseNumber(src mem.RO, base int) (Value, int, error) {
	end := numberEnd(src)
	if end == 0 {
		return nil, 0, &SyntaxError{Offset: base, Message: "malformed number"}
	}
	text := src.SliceTo(end).StringCopy()
	if z, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(z), end, nil
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, 0, &SyntaxError{Offset: base, Message: fmt.Sprintf("malformed number %q", text), err: err}
	}
	return Float(n), end, nil
}

// numberEnd returns the length of the longest prefix of src matching the
// numeric grammar: an optional sign, an integer part that is "0" or a
// nonzero digit followed by digits, an optional fraction, and an optional
// exponent. It returns 0 if no integer part is present.
func numberEnd(src mem.RO) int {
	i := 0
	if i < src.Len() && (src.At(i) == '+' || src.At(i) == '-') {
		i++
	}
	if i >= src.Len() || !isDigit(src.At(i)) {
		return 0
	}
	if src.At(i) == '0' {
		// A leading zero ends the integer part: in "01" only the zero
		// belongs to the number.
		i++
	} else {
		for i < src.Len() && isDigit(src.At(i)) {
			i++
		}
	}
	// Fraction: "." followed by at least one digit.
	if i+1 < src.Len() && src.At(i) == '.' && isDigit(src.At(i+1)) {
		i += 2
		for i < src.Len() && isDigit(src.At(i)) {
			i++
		}
	}
	// Exponent: e or E, an optional sign, and at least one digit.
	if j := i; j < src.Len() && (src.At(j) == 'e' || src.At(j) == 'E') {
		j++
		if j < src.Len() && (src.At(j) == '+' || src.At(j) == '-') {
			j++
		}
		if j < src.Len() && isDigit(src.At(j)) {
			for j < src.Len() && isDigit(src.At(j)) {
				j++
			}
			i = j
		}
	}
	return i
}

// parseString scans a quoted string literal one byte at a time in two
// states, raw and escape. The count includes both quotation marks. An
// unterminated literal consumes the rest of src and succeeds quietly with
// whatever was scanned.
func parseString(src mem.RO) (Value, int) {
	var esc bool
	for i := 1; i < src.Len(); i++ {
		c := src.At(i)
		if esc {
			esc = false
		} else if c == '\\' {
			esc = true
		} else if c == '"' {
			body := src.SliceTo(i).SliceFrom(1)
			return String(escape.Unescape(body)), i + 1
		}
	}
	return String(escape.Unescape(src.SliceFrom(1))), src.Len()
}

// parseArray parses an array from the front of src. A close bracket ends
// the array; a failed element fails the whole array; running out of input
// ends the array with the elements collected so far. Between elements one
// optional comma is consumed.
func (p *Parser) parseArray(src mem.RO, base, depth int) (Value, int, error) {
	arr := Array{}
	i := 1
	for i < src.Len() {
		if src.At(i) == ']' {
			i++
			return arr, i, nil
		}
		v, n, err := p.parseValue(src.SliceFrom(i), base+i, depth-1)
		if err != nil {
			return nil, 0, err
		}
		arr = append(arr, v)
		i += n
		i = skipSpace(src, i)
		if i < src.Len() && src.At(i) == ',' {
			i++
		}
		i = skipSpace(src, i)
	}
	return arr, i, nil
}

// parseObject parses an object from the front of src. Each member is a
// string key, one optional colon, and a value; a non-string key or a
// failed sub-parse fails the whole object. The first occurrence of a key
// wins: members with a key already present are parsed and dropped.
func (p *Parser) parseObject(src mem.RO, base, depth int) (Value, int, error) {
	obj := Object{}
	i := 1
	for i < src.Len() {
		if src.At(i) == '}' {
			i++
			return obj, i, nil
		}
		kv, n, err := p.parseValue(src.SliceFrom(i), base+i, depth-1)
		if err != nil {
			return nil, 0, err
		}
		key, ok := kv.(String)
		if !ok {
			return nil, 0, &SyntaxError{Offset: base + i, Message: fmt.Sprintf("object key is %T, not a string", kv)}
		}
		i += n
		i = skipSpace(src, i)
		if i < src.Len() && src.At(i) == ':' {
			i++
		}
		i = skipSpace(src, i)
		v, n, err := p.parseValue(src.SliceFrom(i), base+i, depth-1)
		if err != nil {
			return nil, 0, err
		}
		i += n
		if obj.Find(string(key)) == nil {
			obj = append(obj, &Member{Key: string(key), Value: v})
		}
		i = skipSpace(src, i)
		if i < src.Len() && src.At(i) == ',' {
			i++
		}
		i = skipSpace(src, i)
	}
	return obj, i, nil
}

// parseConstant matches the literals true, false, and null at the front of
// src. Matching is by prefix, without a word boundary check.
func parseConstant(src mem.RO) (Value, int, bool) {
	for _, c := range [...]struct {
		text string
		val  Value
	}{
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"null", Null},
	} {
		if src.Len() >= len(c.text) && src.SliceTo(len(c.text)).EqualString(c.text) {
			return c.val, len(c.text), true
		}
	}
	return nil, 0, false
}

// skipSpace returns the index of the first non-whitespace byte of src at
// or after i, or src.Len() if there is none.
func skipSpace(src mem.RO, i int) int {
	for i < src.Len() && isSpace(src.At(i)) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isNumStart(c byte) bool { return c == '+' || c == '-' || isDigit(c) }
