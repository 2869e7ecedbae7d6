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

// Package syntax defines the Pine expression algebra (§3, §4.2): the
// tagged union of expression variants, and the bidirectional encoding
// between expressions and the Pine values they are built from.
package syntax

import "github.com/pine-vm/pine/value"

// Expr is a Pine expression. Exactly the variants below implement it;
// callers should type-switch over them rather than add new kinds.
type Expr interface {
	expr()
}

// Literal yields v unchanged.
type Literal struct {
	Value value.Value
}

// List evaluates each element expression in order and yields the list
// of results.
type List struct {
	Elements []Expr
}

// Environment yields the current environment value.
type Environment struct{}

// Conditional yields the branch selected by Condition: IfTrue when
// Condition evaluates to the canonical True value, IfFalse otherwise.
type Conditional struct {
	Condition Expr
	IfTrue    Expr
	IfFalse   Expr
}

// KernelApplication applies the named kernel primitive (§4.4) to the
// evaluated Argument.
type KernelApplication struct {
	Function string
	Argument Expr
}

// DecodeAndEvaluate evaluates Expression to a value, decodes that
// value as a Pine expression, and evaluates the decoded expression
// with the evaluation of Environment as its environment.
type DecodeAndEvaluate struct {
	Expression  Expr
	Environment Expr
}

// StringTag is a transparent annotation: it evaluates Tagged and
// discards Tag from the value stream, but Tag must survive encode and
// decode.
type StringTag struct {
	Tag    string
	Tagged Expr
}

// Delegating is an opaque native shortcut: a host-supplied function
// from an environment value to a result, used outside the encodable
// expression subset (§4.3, §9). It is never produced by Decode and is
// rejected by Encode.
type Delegating struct {
	Name string // diagnostic only; not part of the expression's meaning
	Fn   func(env value.Value) (value.Value, error)
}

func (*Literal) expr()           {}
func (*List) expr()              {}
func (*Environment) expr()       {}
func (*Conditional) expr()       {}
func (*KernelApplication) expr() {}
func (*DecodeAndEvaluate) expr() {}
func (*StringTag) expr()         {}
func (*Delegating) expr()        {}

// TrueValue is the canonical Pine encoding of the boolean True: the
// single-byte blob 0x04.
var TrueValue = value.NewBlob([]byte{0x04})

// FalseValue is the canonical Pine encoding of the boolean False: the
// single-byte blob 0x02, matching True's tagged-variant sibling slot.
var FalseValue = value.NewBlob([]byte{0x02})

// IsTrue reports whether v is the canonical True value. Per §4.3, any
// value other than True is treated as False; this function answers
// only the True question, the caller treats everything else as False.
func IsTrue(v value.Value) bool {
	return value.Equal(v, TrueValue)
}
