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

// Package kernel implements the fixed set of kernel primitives the
// evaluator dispatches KernelApplication expressions to (§4.4). Each
// primitive is a pure function from an already-evaluated Pine value to
// a Result; none of them touch the environment or the cache.
package kernel

import (
	pineerrors "github.com/pine-vm/pine/errors"
	"github.com/pine-vm/pine/syntax"
	"github.com/pine-vm/pine/value"
)

// Func is the signature every kernel primitive implements.
type Func func(value.Value) (value.Value, error)

// Table maps kernel-function names to their implementation. It is the
// authoritative set referenced by syntax.KnownKernelFunction.
var Table = map[string]Func{
	"equal":                   equalFn,
	"logical_not":             logicalNot,
	"logical_and":             logicalAnd,
	"logical_or":              logicalOr,
	"length":                  length,
	"list_head":               listHead,
	"skip":                    skip,
	"take":                    take,
	"reverse":                 reverse,
	"concat":                  concat,
	"neg_int":                 negInt,
	"add_int":                 addInt,
	"sub_int":                 subInt,
	"mul_int":                 mulInt,
	"div_int":                 divInt,
	"is_sorted_ascending_int": isSortedAscendingInt,
}

func init() {
	syntax.KnownKernelFunction = func(name string) bool {
		_, ok := Table[name]
		return ok
	}
}

// Lookup resolves name to its implementation. The UnknownKernel error
// mirrors the one syntax.Decode produces so that both the decode path
// and a direct runtime dispatch (e.g. from a Delegating shortcut) fail
// identically.
func Lookup(name string) (Func, error) {
	fn, ok := Table[name]
	if !ok {
		return nil, pineerrors.Newf(pineerrors.UnknownKernel, "unknown kernel function %q", name)
	}
	return fn, nil
}

func boolValue(b bool) value.Value {
	if b {
		return syntax.TrueValue
	}
	return syntax.FalseValue
}
