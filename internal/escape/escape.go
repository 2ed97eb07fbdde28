// Copyright (C) 2026 FuFu Official. All Rights Reserved.

// Package escape handles the backslash escapes understood by the parser's
// string scanner.
package escape

import "go4.org/mem"

// Unescaped returns the byte an escape letter stands for. Letters outside
// the table map to themselves, so `\"`, `\\`, `\/`, and any unrecognized
// escape all decode to the escaped character itself.
func Unescaped(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case '0':
		return 0
	case 't':
		return '\t'
	case 'v':
		return '\v'
	case 'f':
		return '\f'
	case 'b':
		return '\b'
	case 'a':
		return '\a'
	default:
		return c
	}
}

// Unescape decodes the body of a string literal, with the enclosing
// quotation marks already removed. Escape sequences are replaced by their
// unescaped equivalents; a trailing backslash with nothing after it is
// dropped, matching the string scanner.
func Unescape(src mem.RO) []byte {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			break
		}
		dec = append(dec, Unescaped(src.At(0)))
		src = src.SliceFrom(1)

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec
}

// esc maps a byte to its escape letter; a zero entry means the byte is
// emitted verbatim.
var esc = [256]byte{
	0:    '0',
	'\a': 'a',
	'\b': 'b',
	'\t': 't',
	'\n': 'n',
	'\v': 'v',
	'\f': 'f',
	'\r': 'r',
	'"':  '"',
	'\\': '\\',
}

// Quote encodes src for inclusion in a quoted string literal. Only
// single-letter escapes that Unescape decodes are used, so quoting and
// then unescaping reproduces src exactly.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if e := esc[b]; e != 0 {
			buf = append(buf, '\\', e)
		} else {
			buf = append(buf, b)
		}
	}
	return buf
}
