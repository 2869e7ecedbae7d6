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

package syntax

import (
	pineerrors "github.com/pine-vm/pine/errors"
	"github.com/pine-vm/pine/value"
)

// KnownKernelFunction reports whether name is one of the fixed kernel
// primitives (§4.4). It is a package variable rather than a constant
// set so that the kernel package, which owns the authoritative list,
// can install it during init without syntax importing kernel (which
// would create an import cycle: kernel imports syntax for the Bool
// values).
var KnownKernelFunction = func(name string) bool {
	// Conservative default used only if the kernel package is never
	// linked in (e.g. a caller using syntax standalone for encode-only
	// tooling); every real binary imports kernel, which overrides this.
	return true
}

// Decode converts v back into an Expr. It is the inverse of Encode for
// every non-Delegating expression: decode(encode(e)) = e.
func Decode(v value.Value) (Expr, error) {
	l, ok := v.(*value.List)
	if !ok || l.Len() != 2 {
		return nil, pineerrors.Newf(pineerrors.Decode, "expression must be a two-element list, got %s", v.Kind())
	}
	tagBlob, ok := l.Elems()[0].(*value.List)
	if !ok {
		return nil, pineerrors.Newf(pineerrors.Decode, "expression tag must be a string")
	}
	tag, err := value.StringFromList(tagBlob)
	if err != nil {
		return nil, pineerrors.Wrapf(err, "expression tag")
	}
	payload := l.Elems()[1]

	switch tag {
	case "Literal":
		return &Literal{Value: payload}, nil

	case "List":
		pl, ok := payload.(*value.List)
		if !ok {
			return nil, pineerrors.Newf(pineerrors.Decode, "List payload must be a list, got %s", payload.Kind())
		}
		elems := make([]Expr, len(pl.Elems()))
		for i, e := range pl.Elems() {
			sub, err := Decode(e)
			if err != nil {
				return nil, pineerrors.Wrapf(err, "list element [%d]", i)
			}
			elems[i] = sub
		}
		return &List{Elements: elems}, nil

	case "Environment":
		return &Environment{}, nil

	case "Conditional":
		fields, err := decodeFields(payload, "condition", "ifTrue", "ifFalse")
		if err != nil {
			return nil, pineerrors.Wrapf(err, "conditional")
		}
		cond, err := Decode(fields["condition"])
		if err != nil {
			return nil, pineerrors.Wrapf(err, "conditional condition")
		}
		ifTrue, err := Decode(fields["ifTrue"])
		if err != nil {
			return nil, pineerrors.Wrapf(err, "conditional ifTrue")
		}
		ifFalse, err := Decode(fields["ifFalse"])
		if err != nil {
			return nil, pineerrors.Wrapf(err, "conditional ifFalse")
		}
		return &Conditional{Condition: cond, IfTrue: ifTrue, IfFalse: ifFalse}, nil

	case "KernelApplication":
		fields, err := decodeFields(payload, "functionName", "argument")
		if err != nil {
			return nil, pineerrors.Wrapf(err, "kernel application")
		}
		nameList, ok := fields["functionName"].(*value.List)
		if !ok {
			return nil, pineerrors.Newf(pineerrors.Decode, "kernel application functionName must be a string")
		}
		name, err := value.StringFromList(nameList)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "kernel application functionName")
		}
		if !KnownKernelFunction(name) {
			return nil, pineerrors.Newf(pineerrors.UnknownKernel, "unknown kernel function %q", name)
		}
		arg, err := Decode(fields["argument"])
		if err != nil {
			return nil, pineerrors.Wrapf(err, "kernel application argument")
		}
		return &KernelApplication{Function: name, Argument: arg}, nil

	case "DecodeAndEvaluate":
		fields, err := decodeFields(payload, "expression", "environment")
		if err != nil {
			return nil, pineerrors.Wrapf(err, "decode-and-evaluate")
		}
		expr, err := Decode(fields["expression"])
		if err != nil {
			return nil, pineerrors.Wrapf(err, "decode-and-evaluate expression")
		}
		env, err := Decode(fields["environment"])
		if err != nil {
			return nil, pineerrors.Wrapf(err, "decode-and-evaluate environment")
		}
		return &DecodeAndEvaluate{Expression: expr, Environment: env}, nil

	case "StringTag":
		pl, ok := payload.(*value.List)
		if !ok || pl.Len() != 2 {
			return nil, pineerrors.Newf(pineerrors.Decode, "StringTag payload must be a two-element list")
		}
		tagNameList, ok := pl.Elems()[0].(*value.List)
		if !ok {
			return nil, pineerrors.Newf(pineerrors.Decode, "StringTag tag must be a string")
		}
		tagName, err := value.StringFromList(tagNameList)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "string-tag tag")
		}
		tagged, err := Decode(pl.Elems()[1])
		if err != nil {
			return nil, pineerrors.Wrapf(err, "string-tag payload")
		}
		return &StringTag{Tag: tagName, Tagged: tagged}, nil

	default:
		return nil, pineerrors.Newf(pineerrors.UnknownTag, "unknown expression tag %q", tag)
	}
}

// decodeFields decodes payload as a record (§4.2: a list of
// [field-name-string, field-value] pairs in declaration order) and
// requires exactly the named fields to be present, in that order.
func decodeFields(payload value.Value, names ...string) (map[string]value.Value, error) {
	l, ok := payload.(*value.List)
	if !ok || l.Len() != len(names) {
		return nil, pineerrors.Newf(pineerrors.Decode, "record must have %d fields, got %s", len(names), payload.Kind())
	}
	out := make(map[string]value.Value, len(names))
	for i, want := range names {
		pair, ok := l.Elems()[i].(*value.List)
		if !ok || pair.Len() != 2 {
			return nil, pineerrors.Newf(pineerrors.Decode, "record field [%d] must be a two-element [name, value] pair", i)
		}
		nameList, ok := pair.Elems()[0].(*value.List)
		if !ok {
			return nil, pineerrors.Newf(pineerrors.Decode, "record field [%d] name must be a string", i)
		}
		name, err := value.StringFromList(nameList)
		if err != nil {
			return nil, pineerrors.Wrapf(err, "record field [%d] name", i)
		}
		if name != want {
			return nil, pineerrors.Newf(pineerrors.Decode, "record field [%d]: expected %q, got %q", i, want, name)
		}
		out[name] = pair.Elems()[1]
	}
	return out, nil
}
