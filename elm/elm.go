// Copyright 2026 Pine Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package elm implements the higher-level Elm-value domain (§4.5): its
// lossless mapping to and from Pine values, and its textual
// pretty-printer. This is the layer a self-hosted compiler or a
// diagnostic surface works with instead of raw Pine values.
package elm

import "math/big"

// Value is an Elm value. Exactly the variants below implement it.
type Value interface {
	elm()
	// NodeCount is the cached count of nodes contained in this value
	// (itself included), used for size bookkeeping.
	NodeCount() int
}

// Integer is an arbitrary-precision Elm integer.
type Integer struct {
	N *big.Int
}

// Char is a single Unicode code point.
type Char struct {
	R rune
}

// Str is Unicode text.
type Str struct {
	S string
}

// List is an ordered sequence of Elm values.
type List struct {
	Elements []Value
	nodes    int
}

// Tag is a named variant carrying a (possibly empty) argument list.
type Tag struct {
	Name string
	Args []Value
	nodes int
}

// RecordField is one (name, value) pair of a Record, in declaration order.
type RecordField struct {
	Name  string
	Value Value
}

// Record is an ordered sequence of fields with strictly ascending
// names (§3).
type Record struct {
	Fields []RecordField
	nodes  int
}

// Internal is an opaque diagnostic value with no Pine representation;
// it exists so the domain can carry host-internal state (e.g. a
// partially applied function) without crashing the mapping layer.
type Internal struct {
	Note string
}

func (*Integer) elm() {}
func (*Char) elm()    {}
func (*Str) elm()     {}
func (*List) elm()    {}
func (*Tag) elm()     {}
func (*Record) elm()  {}
func (*Internal) elm() {}

func (*Integer) NodeCount() int { return 1 }
func (*Char) NodeCount() int    { return 1 }
func (*Str) NodeCount() int     { return 1 }
func (*Internal) NodeCount() int { return 1 }
func (l *List) NodeCount() int  { return l.nodes }
func (t *Tag) NodeCount() int   { return t.nodes }
func (r *Record) NodeCount() int { return r.nodes }

// NewInteger constructs an Integer value, returning the shared
// interned instance when n falls in the popular small-integer range
// (§4.5 point 5).
func NewInteger(n *big.Int) *Integer {
	if n.IsInt64() {
		if i, ok := InternedInteger(n.Int64()); ok {
			return i
		}
	}
	return &Integer{N: new(big.Int).Set(n)}
}

// NewChar constructs a Char value, returning the shared interned
// instance when r falls in the popular low-codepoint range.
func NewChar(r rune) *Char {
	if c, ok := InternedChar(r); ok {
		return c
	}
	return &Char{R: r}
}

// NewStr constructs a Str value, returning the shared interned
// instance when s is a popular string.
func NewStr(s string) *Str {
	if v, ok := InternedStr(s); ok {
		return v
	}
	return &Str{S: s}
}

// NewList constructs a List value, computing its contained-node count.
func NewList(elems []Value) *List {
	nodes := 1
	for _, e := range elems {
		nodes += e.NodeCount()
	}
	return &List{Elements: elems, nodes: nodes}
}

// NewTag constructs a Tag value, computing its contained-node count.
func NewTag(name string, args []Value) *Tag {
	nodes := 1
	for _, a := range args {
		nodes += a.NodeCount()
	}
	return &Tag{Name: name, Args: args, nodes: nodes}
}

// NewRecord constructs a Record value from fields already in strictly
// ascending name order, computing its contained-node count.
func NewRecord(fields []RecordField) *Record {
	nodes := 1
	for _, f := range fields {
		nodes += f.Value.NodeCount()
	}
	return &Record{Fields: fields, nodes: nodes}
}
