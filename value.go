// Copyright (C) 2026 FuFu Official. All Rights Reserved.

package cappuccino

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FuFu-Official/cappuccino/internal/escape"
	"go4.org/mem"
)

// A Value is a single parsed datum: Null, a Bool, an Int, a Float, a
// String, an Array, or an Object. A Value is an immutable snapshot once
// constructed; containers own their elements exclusively.
type Value interface {
	// JSON renders the value as compact JSON-shaped text. The output of
	// JSON is valid input for Parse.
	JSON() string
}

// Null represents the null value. It is also what the parser reports for
// the literal "null" when constants are enabled.
var Null Value = nullValue{}

type nullValue struct{}

func (nullValue) JSON() string   { return "null" }
func (nullValue) String() string { return "null" }

// A Bool is a Boolean constant, true or false. The base grammar never
// produces a Bool from text; see [Parser.AllowConstants].
type Bool bool

func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// An Int is a signed integer value.
type Int int64

func (z Int) JSON() string { return strconv.FormatInt(int64(z), 10) }

// Int64 returns z as an int64.
func (z Int) Int64() int64 { return int64(z) }

// A Float is a floating-point value.
type Float float64

func (n Float) JSON() string {
	s := strconv.FormatFloat(float64(n), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		// An integral float would re-parse as an Int; keep a fraction
		// marker so the rendering stays a Float.
		s += ".0"
	}
	return s
}

// Float64 returns n as a float64.
func (n Float) Float64() float64 { return float64(n) }

// A String is a string value. Its text is fully unescaped.
type String string

func (s String) JSON() string { return quote(string(s)) }

func (s String) Len() int { return len(s) }

func quote(s string) string { return `"` + string(escape.Quote(mem.S(s))) + `"` }

// An Array is a sequence of values in source order.
type Array []Value

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a[0].JSON())
	for _, elt := range a[1:] {
		sb.WriteByte(',')
		sb.WriteString(elt.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

func (a Array) Len() int { return len(a) }

// An Object is a collection of key-value members in source order.
type Object []*Member

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(o[0].JSON())
	for _, elt := range o[1:] {
		sb.WriteByte(',')
		sb.WriteString(elt.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

func (o Object) Len() int { return len(o) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (m *Member) JSON() string {
	v := m.Value
	if v == nil {
		v = Null // a zero Member renders as an explicit null
	}
	return quote(m.Key) + ":" + v.JSON()
}

func (m *Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
// The value must be a string, int, int64, float64, bool, nil, or Value.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// ToValue converts a string, int, int64, float64, bool, or nil into a
// Value. A Value is returned unchanged. It panics for any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return String(t)
	case int:
		return Int(t)
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case bool:
		return Bool(t)
	case nil:
		return Null
	default:
		panic(fmt.Sprintf("cannot convert %T to a value", v))
	}
}
