// Copyright (C) 2026 FuFu Official. All Rights Reserved.

package printer

import "github.com/FuFu-Official/cappuccino"

// A Colorizer holds the ANSI codes a Printer emits around each class of
// output. Empty codes leave that class unstyled.
type Colorizer struct {
	Key    []byte // object keys
	String []byte // string values
	Number []byte // integer and floating-point values
	Const  []byte // null and the booleans
	Reset  []byte
}

func (c *Colorizer) keyCode() []byte {
	if c == nil {
		return nil
	}
	return c.Key
}

func (c *Colorizer) valueCode(v cappuccino.Value) []byte {
	if c == nil {
		return nil
	}
	switch v.(type) {
	case cappuccino.String:
		return c.String
	case cappuccino.Int, cappuccino.Float:
		return c.Number
	default:
		return c.Const
	}
}
